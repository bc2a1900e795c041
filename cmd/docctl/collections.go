package main

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"arangodoc/internal/collection"
	"arangodoc/internal/connection"
)

func newCollectionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collections",
		Short:   "Manage collections",
		Aliases: []string{"collection", "col"},
	}
	cmd.AddCommand(newCollectionsListCmd())
	cmd.AddCommand(newCollectionsCreateCmd())
	cmd.AddCommand(newCollectionsDropCmd())
	cmd.AddCommand(newCollectionsChecksumCmd())
	cmd.AddCommand(newCollectionsCountCmd())
	return cmd
}

func newCollectionsListCmd() *cobra.Command {
	var includeSystem bool
	cmd := &cobra.Command{
		Use:   "ls",
		Short: "List collections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTransport()
			if err != nil {
				return err
			}
			m := collection.NewListCollections()
			if includeSystem {
				m = m.IncludingSystem()
			}
			list, err := connection.Execute(context.Background(), t, m)
			if err != nil {
				return err
			}
			return printCollections(cmd, list)
		},
	}
	cmd.Flags().BoolVar(&includeSystem, "system", false, "Include system collections")
	return cmd
}

func printCollections(cmd *cobra.Command, list []collection.Collection) error {
	if output != "table" {
		return printValue(cmd, list)
	}
	tw := newTable(table.Row{"ID", "NAME", "TYPE", "STATUS", "SYSTEM"})
	for _, c := range list {
		tw.AppendRow(table.Row{c.ID, c.Name, c.Type, c.Status, c.IsSystem})
	}
	cmd.Printf("%s\n", tw.Render())
	return nil
}

func newCollectionsCreateCmd() *cobra.Command {
	var (
		edge        bool
		waitForSync bool
	)
	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTransport()
			if err != nil {
				return err
			}
			kind := collection.Documents
			if edge {
				kind = collection.Edges
			}
			props, err := connection.Execute(context.Background(), t, collection.NewCreateCollection(collection.NewCollection{
				Name:        args[0],
				Type:        kind,
				WaitForSync: waitForSync,
			}))
			if err != nil {
				return err
			}
			return printValue(cmd, props)
		},
	}
	cmd.Flags().BoolVar(&edge, "edge", false, "Create an edge collection")
	cmd.Flags().BoolVar(&waitForSync, "wait-for-sync", false, "Sync every write to disk")
	return cmd
}

func newCollectionsDropCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drop [name]",
		Short: "Drop a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTransport()
			if err != nil {
				return err
			}
			id, err := connection.Execute(context.Background(), t, collection.NewDropCollection(args[0]))
			if err != nil {
				return err
			}
			cmd.Printf("dropped %s (%s)\n", args[0], id)
			return nil
		},
	}
}

func newCollectionsChecksumCmd() *cobra.Command {
	var withRevisions, withData bool
	cmd := &cobra.Command{
		Use:   "checksum [name]",
		Short: "Print the checksum of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTransport()
			if err != nil {
				return err
			}
			m := collection.NewGetCollectionChecksum(args[0]).WithRevisions(withRevisions).WithData(withData)
			checksum, err := connection.Execute(context.Background(), t, m)
			if err != nil {
				return err
			}
			return printValue(cmd, checksum)
		},
	}
	cmd.Flags().BoolVar(&withRevisions, "revisions", false, "Include document revisions")
	cmd.Flags().BoolVar(&withData, "data", false, "Include document data")
	return cmd
}

func newCollectionsCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [name]",
		Short: "Print the number of documents of a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := newTransport()
			if err != nil {
				return err
			}
			count, err := connection.Execute(context.Background(), t, collection.NewGetCollectionDocumentCount(args[0]))
			if err != nil {
				return err
			}
			cmd.Println(fmt.Sprint(count.Count))
			return nil
		},
	}
}
