package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"mqstore/internal/domain"
)

// ls: list persisted records with their handshake classification.
func lsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls",
		Short: "List persisted records for the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := wire.Store.Keys()
			if err != nil {
				return err
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

			for _, k := range keys {
				dir, id, ok := domain.ParseKey(k)
				if !ok {
					fmt.Printf("%s\n", k)
					continue
				}
				side := "outbound"
				if dir == domain.Inbound {
					side = "inbound"
				}
				fmt.Printf("%s\t%s packet %d\n", k, side, id)
			}
			return nil
		},
	}
}
