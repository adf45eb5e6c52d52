package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Aliagaaaaaa/pets/internal/catalog"
)

// tabPadding is the column padding for tabulated output.
const tabPadding = 2

// listPayload is the envelope for json/yaml output of a snapshot.
type listPayload struct {
	Animals      []catalog.Animal `json:"animals"       yaml:"animals"`
	Region       string           `json:"region"        yaml:"region"`
	Page         int              `json:"page"          yaml:"page"`
	TotalPages   int              `json:"total_pages"   yaml:"total_pages"`
	TotalAnimals int              `json:"total_animals" yaml:"total_animals"`
}

// renderSnapshot writes one page of the catalog in the requested format.
func renderSnapshot(w io.Writer, snap catalog.Snapshot, format string) error {
	switch format {
	case "table":
		return renderSnapshotTable(w, snap)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newListPayload(snap))
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(newListPayload(snap)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (valid: table, json, yaml)", format)
	}
}

func newListPayload(snap catalog.Snapshot) listPayload {
	return listPayload{
		Animals:      snap.Records,
		Region:       snap.Region,
		Page:         snap.Page,
		TotalPages:   snap.TotalPages,
		TotalAnimals: snap.TotalRecords,
	}
}

func renderSnapshotTable(w io.Writer, snap catalog.Snapshot) error {
	if snap.TotalRecords == 0 {
		_, err := fmt.Fprintln(w, "No animals found.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "Name\tType\tAge\tSex\tRegion\tComuna\tStatus")
	fmt.Fprintln(tw, "----\t----\t---\t---\t------\t------\t------")
	for _, a := range snap.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.Name, a.Type, a.Age, a.Sex, a.Region, a.Comuna, a.Status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\nPage %d/%d (%d animals)\n",
		snap.Page, snap.TotalPages, snap.TotalRecords)
	return err
}
