package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"arangodoc/internal/connection"
	"arangodoc/internal/content"
	"arangodoc/internal/document"
)

type opaque = content.JSONString

// writeFlags are shared by the commands that modify documents.
type writeFlags struct {
	ifMatch     string
	rev         string
	returnOld   bool
	returnNew   bool
	waitForSync bool
}

func (f *writeFlags) register(cmd *cobra.Command, withRev bool) {
	cmd.Flags().StringVar(&f.ifMatch, "if-match", "", "Only apply if the document has this revision")
	if withRev {
		cmd.Flags().StringVar(&f.rev, "rev", "", "Revision embedded in the body and checked by the server")
	}
	cmd.Flags().BoolVar(&f.returnOld, "return-old", false, "Print the previous document")
	cmd.Flags().BoolVar(&f.waitForSync, "wait-for-sync", false, "Wait until the write is synced to disk")
}

func (f *writeFlags) update(key string, body opaque) document.Update[opaque] {
	update := document.NewUpdate(document.Key(key), body)
	if f.rev != "" {
		update = update.WithRevision(document.Revision(f.rev))
	}
	return update
}

func newDocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "doc",
		Short:   "Manage documents",
		Aliases: []string{"document", "documents"},
	}
	cmd.AddCommand(newDocGetCmd())
	cmd.AddCommand(newDocHeadCmd())
	cmd.AddCommand(newDocInsertCmd())
	cmd.AddCommand(newDocReplaceCmd())
	cmd.AddCommand(newDocUpdateCmd())
	cmd.AddCommand(newDocDeleteCmd())
	return cmd
}

// parseID accepts either "collection/key" or the collection and the key as two arguments.
func parseID(args []string) (document.ID, error) {
	if len(args) == 2 {
		return document.NewID(args[0], document.Key(args[1])), nil
	}
	return document.ParseID(args[0])
}

// readBody reads a JSON body given inline, as @file or as - for stdin.
func readBody(cmd *cobra.Command, arg string) (opaque, error) {
	var data []byte
	var err error
	switch {
	case arg == "-":
		data, err = io.ReadAll(cmd.InOrStdin())
	case strings.HasPrefix(arg, "@"):
		data, err = os.ReadFile(strings.TrimPrefix(arg, "@"))
	default:
		data = []byte(arg)
	}
	if err != nil {
		return "", err
	}
	body := content.FromBytes(data)
	if !body.Valid() {
		return "", errors.New("body is not valid JSON")
	}
	return body, nil
}

func newDocGetCmd() *cobra.Command {
	var ifNoneMatch string
	cmd := &cobra.Command{
		Use:   "get [collection/key | collection key]",
		Short: "Print a document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			t, err := newTransport()
			if err != nil {
				return err
			}
			m := document.NewGetDocument[opaque](id)
			if ifNoneMatch != "" {
				m = m.WithIfNoneMatch(document.Revision(ifNoneMatch))
			}
			doc, err := connection.Execute(context.Background(), t, m)
			if err != nil {
				return err
			}
			return printValue(cmd, doc.Content)
		},
	}
	cmd.Flags().StringVar(&ifNoneMatch, "if-none-match", "", "Fail with not modified if the document has this revision")
	return cmd
}

func newDocHeadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "head [collection/key | collection key]",
		Short: "Print the revision of a document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			t, err := newTransport()
			if err != nil {
				return err
			}
			header, err := connection.Execute(context.Background(), t, document.NewGetDocumentHeader(id))
			if err != nil {
				return err
			}
			cmd.Println(string(header.Revision))
			return nil
		},
	}
}

func newDocInsertCmd() *cobra.Command {
	var flags writeFlags
	cmd := &cobra.Command{
		Use:   "insert [collection] [json | @file | -]",
		Short: "Insert a document, or a batch given as a JSON array",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readBody(cmd, args[1])
			if err != nil {
				return err
			}
			t, err := newTransport()
			if err != nil {
				return err
			}
			ctx := context.Background()

			var elems []opaque
			if err := body.Decode(&elems); err == nil {
				docs := make([]document.NewDocument[opaque], len(elems))
				for i, elem := range elems {
					docs[i] = document.NewDocumentFrom(elem)
				}
				m := document.NewInsertDocuments(args[0], docs...).WithForceWaitForSync(flags.waitForSync)
				outcomes, err := connection.Execute(ctx, t, m)
				if err != nil {
					return err
				}
				return printOutcomes(cmd, outcomes)
			}

			m := document.NewInsertDocument(args[0], document.NewDocumentFrom(body)).WithForceWaitForSync(flags.waitForSync)
			if flags.returnNew {
				doc, err := connection.Execute(ctx, t, m.ReturnNew())
				if err != nil {
					return err
				}
				return printValue(cmd, doc.Content)
			}
			header, err := connection.Execute(ctx, t, m)
			if err != nil {
				return err
			}
			return printValue(cmd, header)
		},
	}
	cmd.Flags().BoolVar(&flags.returnNew, "return-new", false, "Print the stored document")
	cmd.Flags().BoolVar(&flags.waitForSync, "wait-for-sync", false, "Wait until the write is synced to disk")
	return cmd
}

// printOutcomes prints one row per batch element, in input order.
func printOutcomes(cmd *cobra.Command, outcomes []document.Outcome[document.Header]) error {
	if output != "table" {
		return printValue(cmd, outcomes)
	}
	tw := newTable(table.Row{"#", "KEY", "REVISION", "ERROR"})
	for i, o := range outcomes {
		if !o.Ok() {
			tw.AppendRow(table.Row{i, "", "", fmt.Sprintf("%s: %s", o.Err.Code, o.Err.Message)})
			continue
		}
		tw.AppendRow(table.Row{i, o.Value.Key, o.Value.Revision, ""})
	}
	cmd.Printf("%s\n", tw.Render())
	cmd.Printf("%d of %d inserted\n", document.Succeeded(outcomes), len(outcomes))
	return nil
}

func newDocReplaceCmd() *cobra.Command {
	var flags writeFlags
	cmd := &cobra.Command{
		Use:   "replace [collection/key] [json | @file | -]",
		Short: "Replace a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := document.ParseID(args[0])
			if err != nil {
				return err
			}
			body, err := readBody(cmd, args[1])
			if err != nil {
				return err
			}
			t, err := newTransport()
			if err != nil {
				return err
			}
			m := document.NewReplaceDocument[opaque, opaque](id.CollectionName(), flags.update(string(id.DocumentKey()), body)).
				WithIgnoreRevisions(flags.rev == "").
				WithReturnOld(flags.returnOld).
				WithReturnNew(flags.returnNew).
				WithForceWaitForSync(flags.waitForSync)
			if flags.ifMatch != "" {
				m = m.WithIfMatch(document.Revision(flags.ifMatch))
			}
			updated, err := connection.Execute(context.Background(), t, m)
			if err != nil {
				return err
			}
			return printValue(cmd, updated)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().BoolVar(&flags.returnNew, "return-new", false, "Print the stored document")
	return cmd
}

func newDocUpdateCmd() *cobra.Command {
	var (
		flags        writeFlags
		keepNull     bool
		mergeObjects bool
	)
	cmd := &cobra.Command{
		Use:   "update [collection/key] [json | @file | -]",
		Short: "Merge attributes into a document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := document.ParseID(args[0])
			if err != nil {
				return err
			}
			body, err := readBody(cmd, args[1])
			if err != nil {
				return err
			}
			t, err := newTransport()
			if err != nil {
				return err
			}
			m := document.NewUpdateDocument[opaque, opaque, opaque](id.CollectionName(), flags.update(string(id.DocumentKey()), body)).
				WithIgnoreRevisions(flags.rev == "").
				WithKeepNull(keepNull).
				WithMergeObjects(mergeObjects).
				WithReturnOld(flags.returnOld).
				WithReturnNew(flags.returnNew).
				WithForceWaitForSync(flags.waitForSync)
			if flags.ifMatch != "" {
				m = m.WithIfMatch(document.Revision(flags.ifMatch))
			}
			updated, err := connection.Execute(context.Background(), t, m)
			if err != nil {
				return err
			}
			return printValue(cmd, updated)
		},
	}
	flags.register(cmd, true)
	cmd.Flags().BoolVar(&flags.returnNew, "return-new", false, "Print the stored document")
	cmd.Flags().BoolVar(&keepNull, "keep-null", true, "Store null attributes instead of removing them")
	cmd.Flags().BoolVar(&mergeObjects, "merge-objects", true, "Merge nested objects instead of replacing them")
	return cmd
}

func newDocDeleteCmd() *cobra.Command {
	var flags writeFlags
	cmd := &cobra.Command{
		Use:   "delete [collection/key | collection key]",
		Short: "Delete a document",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args)
			if err != nil {
				return err
			}
			t, err := newTransport()
			if err != nil {
				return err
			}
			m := document.NewDeleteDocument[opaque](id).
				WithReturnOld(flags.returnOld).
				WithForceWaitForSync(flags.waitForSync)
			if flags.ifMatch != "" {
				m = m.WithIfMatch(document.Revision(flags.ifMatch))
			}
			removed, err := connection.Execute(context.Background(), t, m)
			if err != nil {
				return err
			}
			return printValue(cmd, removed)
		},
	}
	flags.register(cmd, false)
	return cmd
}
