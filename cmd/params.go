package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ytget/wallpanel/internal/catalog"
	"github.com/ytget/wallpanel/internal/config"
	"github.com/ytget/wallpanel/internal/model"
	"github.com/ytget/wallpanel/internal/urlbuilder"
)

// paramFlags holds the rendering parameters shared by url and qr.
type paramFlags struct {
	params model.ParameterSet
	origin string
	from   string
}

func addParamFlags(cmd *cobra.Command, pf *paramFlags) {
	d := catalog.Defaults(time.Now())
	cmd.Flags().StringVar(&pf.params.Device, "device", d.Device, "device profile")
	cmd.Flags().StringVar(&pf.params.Lang, "lang", d.Lang, "calendar language")
	cmd.Flags().StringVar(&pf.params.Timezone, "timezone", d.Timezone, "timezone (UTC hour offset or zone name)")
	cmd.Flags().StringVar(&pf.params.Weekends, "weekends", d.Weekends, "weekend highlight style")
	cmd.Flags().StringVar(&pf.origin, "origin", "", "renderer origin (defaults to the configured one)")
	cmd.Flags().StringVar(&pf.from, "from", "", "start from an existing /wallpaper URL; explicit flags override it")
}

// resolve returns the URL builder and parameters for the flags. Values from
// --from are used unless the matching flag was set explicitly.
func (pf *paramFlags) resolve(cmd *cobra.Command) (urlbuilder.Builder, model.ParameterSet, error) {
	params := pf.params
	if pf.from != "" {
		parsed, err := urlbuilder.Parse(pf.from)
		if err != nil {
			return urlbuilder.Builder{}, params, fmt.Errorf("parsing --from: %w", err)
		}
		for _, name := range model.ParamNames {
			if cmd.Flags().Changed(name) {
				continue
			}
			v, _ := parsed.Get(name)
			params = params.With(name, v)
		}
	}

	origin := pf.origin
	if origin == "" && cfg != nil {
		origin = cfg.Origin
	}
	origin = config.NormalizeOrigin(origin)
	if err := config.ValidateOrigin(origin); err != nil {
		return urlbuilder.Builder{}, params, err
	}

	if _, ok := catalog.LookupDevice(params.Device); !ok && log != nil {
		log.Debug("unknown device profile", "device", params.Device)
	}
	return urlbuilder.New(origin), params, nil
}
