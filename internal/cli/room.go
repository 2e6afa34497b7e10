package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room and gameplay commands",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomListCmd())
	cmd.AddCommand(newRoomShowCmd())
	cmd.AddCommand(newRoomInviteCmd())
	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomViewCmd())
	cmd.AddCommand(newRoomPlaceCmd())
	cmd.AddCommand(newRoomAttackCmd())

	return cmd
}

func newRoomCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a new room",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CreateRoomResult

			if err := client.Post("/api/v1/rooms", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List rooms waiting for an opponent",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoomList

			if err := client.Get("/api/v1/rooms", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <room-id>",
		Short: "Show room status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Room

			if err := client.Get("/api/v1/rooms/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomInviteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invite <code>",
		Short: "Look up a room by invite code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Room

			if err := client.Get("/api/v1/rooms/invite/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <room-id>",
		Short: "Join a room as the second player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result JoinRoomResult

			if err := client.Post("/api/v1/rooms/"+args[0]+"/join", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view <room-id>",
		Short: "Show your view of a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoomView

			if err := client.Get("/api/v1/rooms/"+args[0]+"/view", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomPlaceCmd() *cobra.Command {
	var ships []string

	cmd := &cobra.Command{
		Use:   "place <room-id> <player-id>",
		Short: "Submit your fleet placement",
		Long: `Submit your fleet placement for a room.

Each --ship takes the form kind:x1,y1:x2,y2, e.g.:

  broadside room place room_1 pl_1 \
    --ship carrier:0,0:4,0 \
    --ship battleship:0,1:3,1 \
    --ship cruiser:0,2:2,2 \
    --ship submarine:0,3:2,3 \
    --ship destroyer:0,4:1,4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(ships) == 0 {
				return fmt.Errorf("at least one --ship is required")
			}

			placements := make([]map[string]any, len(ships))
			for i, s := range ships {
				placement, err := parseShipFlag(s)
				if err != nil {
					return err
				}
				placements[i] = placement
			}

			req := map[string]any{"ships": placements}
			path := fmt.Sprintf("/api/v1/rooms/%s/players/%s/fleet", args[0], args[1])

			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Fleet placed")
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&ships, "ship", nil, "Ship placement as kind:x1,y1:x2,y2 (repeatable)")

	return cmd
}

func newRoomAttackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "attack <room-id> <player-id> <x,y>",
		Short: "Fire at a cell on the opponent's board",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, y, err := parseCoord(args[2])
			if err != nil {
				return err
			}

			req := map[string]int{"x": x, "y": y}
			path := fmt.Sprintf("/api/v1/rooms/%s/players/%s/attack", args[0], args[1])

			var result Guess
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

// parseShipFlag parses kind:x1,y1:x2,y2 into a fleet request entry
func parseShipFlag(s string) (map[string]any, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid ship %q: expected kind:x1,y1:x2,y2", s)
	}

	x1, y1, err := parseCoord(parts[1])
	if err != nil {
		return nil, fmt.Errorf("invalid ship %q: %w", s, err)
	}
	x2, y2, err := parseCoord(parts[2])
	if err != nil {
		return nil, fmt.Errorf("invalid ship %q: %w", s, err)
	}

	return map[string]any{
		"kind":  parts[0],
		"start": map[string]int{"x": x1, "y": y1},
		"end":   map[string]int{"x": x2, "y": y2},
	}, nil
}

// parseCoord parses "x,y" into its components
func parseCoord(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid coordinate %q: expected x,y", s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid coordinate %q: %w", s, err)
	}

	return x, y, nil
}
