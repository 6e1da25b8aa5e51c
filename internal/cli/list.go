package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/linktime/pkg/codec"
	"github.com/arthur-debert/linktime/pkg/errors"
	"github.com/arthur-debert/linktime/pkg/logging"
	"github.com/arthur-debert/linktime/pkg/registry"
	"github.com/arthur-debert/linktime/pkg/shapes"
	"github.com/arthur-debert/linktime/pkg/ui/display"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [family]",
		Short: "List plug-in families and their registered implementations",
		Long: `List every plug-in family known to this binary, with one row per
registered implementation. Families are matched case-insensitively, by
import path, by full name (shapes.Shape) or by type name (shape).

Implementations appear in registration order, which is unspecified.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.list")
			defer logging.LogOperationStart(logger, "list")()

			families := knownFamilies()
			if len(args) == 1 {
				match, err := filterFamily(families, args[0])
				if err != nil {
					return err
				}
				families = []registry.FamilyInfo{match}
			}

			logger.Debug().Int("families", len(families)).Msg("listing families")
			return a.renderer.RenderResult(&display.FamiliesResult{Families: families})
		},
	}
}

// knownFamilies merges the families that have registrations with the
// families this binary declares, which may have none.
func knownFamilies() []registry.FamilyInfo {
	declared := []registry.FamilyInfo{
		registry.Describe[shapes.Shape](),
		registry.Describe[codec.Codec](),
	}
	return mergeFamilies(declared, registry.Families())
}

// mergeFamilies combines snapshots keyed by import path, later lists
// winning. Families sharing a short name stay distinct.
func mergeFamilies(lists ...[]registry.FamilyInfo) []registry.FamilyInfo {
	byPath := make(map[string]registry.FamilyInfo)
	for _, list := range lists {
		for _, f := range list {
			byPath[f.Path] = f
		}
	}

	out := make([]registry.FamilyInfo, 0, len(byPath))
	for _, f := range byPath {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		return out[i].Path < out[j].Path
	})
	return out
}

func filterFamily(families []registry.FamilyInfo, name string) (registry.FamilyInfo, error) {
	for _, f := range families {
		short := f.Family[strings.LastIndex(f.Family, ".")+1:]
		if strings.EqualFold(f.Path, name) || strings.EqualFold(f.Family, name) || strings.EqualFold(short, name) {
			return f, nil
		}
	}
	return registry.FamilyInfo{}, errors.Newf(errors.ErrNotFound, "no plug-in family named %q", name).
		WithDetail("family", name)
}
