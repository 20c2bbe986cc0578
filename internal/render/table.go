package render

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/forage-ports/internal/port"
)

// Row is one service of a listing.
type Row struct {
	Service   string `json:"name"`
	Port      int    `json:"port"`
	TLSPort   int    `json:"tlsPort,omitempty"`
	Dir       string `json:"dir,omitempty"`
	Contested bool   `json:"contested"`
}

// Rows builds one row per service in assignment order. ws may be nil.
func Rows(a *port.Assignment, ws *config.Workspace) []Row {
	var rows []Row
	index := make(map[port.Identifier]int)

	for _, pl := range a.Placements() {
		i, ok := index[pl.Key.Project]
		if !ok {
			i = len(rows)
			index[pl.Key.Project] = i
			row := Row{Service: string(pl.Key.Project)}
			if ws != nil {
				if svc, ok := ws.Service(row.Service); ok {
					row.Dir = svc.Dir
				}
			}
			rows = append(rows, row)
		}

		if pl.Key.TLS {
			rows[i].TLSPort = pl.Port
		} else {
			rows[i].Port = pl.Port
		}
		if pl.Contested {
			rows[i].Contested = true
		}
	}

	return rows
}

// Table writes rows as an aligned table.
func Table(w io.Writer, rows []Row, secure bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if secure {
		fmt.Fprintln(tw, "SERVICE\tPORT\tTLS PORT\tDIR")
		fmt.Fprintln(tw, "-------\t----\t--------\t---")
	} else {
		fmt.Fprintln(tw, "SERVICE\tPORT\tDIR")
		fmt.Fprintln(tw, "-------\t----\t---")
	}

	for _, r := range rows {
		dir := r.Dir
		if dir == "" {
			dir = "-"
		}
		if secure {
			fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Service, r.Port, r.TLSPort, dir)
		} else {
			fmt.Fprintf(tw, "%s\t%d\t%s\n", r.Service, r.Port, dir)
		}
	}

	return tw.Flush()
}

// Listing is the JSON form of an assignment.
type Listing struct {
	Range       string `json:"range"`
	Secure      bool   `json:"secure"`
	Fingerprint string `json:"fingerprint"`
	Services    []Row  `json:"services"`
}

// JSON writes the assignment as indented JSON.
func JSON(w io.Writer, a *port.Assignment, rows []Row) error {
	if rows == nil {
		rows = []Row{}
	}
	listing := Listing{
		Range:       a.Range.String(),
		Secure:      a.Secure,
		Fingerprint: a.Fingerprint(),
		Services:    rows,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(listing)
}

// Explain writes one line per key showing where it wanted to go and where
// it went.
func Explain(w io.Writer, r port.Range, placements []port.Placement) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tPREFERRED\tPORT\tSTATUS")
	fmt.Fprintln(tw, "---\t---------\t----\t------")

	for _, pl := range placements {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", pl.Key, pl.Preferred, pl.Port, PlacementStatus(r, pl))
	}

	return tw.Flush()
}

// PlacementStatus describes how a key was placed. Probe distance counts
// forward from the preferred port, wrapping at the end of r.
func PlacementStatus(r port.Range, pl port.Placement) string {
	switch {
	case !pl.Contested:
		return "solo"
	case pl.Port == pl.Preferred:
		return "contested"
	default:
		d := (pl.Port - pl.Preferred + r.Size()) % r.Size()
		return fmt.Sprintf("contested, probed +%d", d)
	}
}
