package cli

import (
	"fmt"
	"strings"

	"github.com/ytget/download-check/internal/config"
	"github.com/ytget/download-check/internal/transition"
)

// loadVariants returns the built-in variants followed by the ones from
// --variants. A file variant with a built-in name, in any case, replaces it.
func loadVariants(app *AppContext) ([]config.Variant, error) {
	variants := config.BuiltinVariants()
	if app.Opts.VariantsPath == "" {
		return variants, nil
	}

	extra, err := config.LoadVariantsFile(app.Opts.VariantsPath)
	if err != nil {
		return nil, err
	}
	for _, v := range extra {
		replaced := false
		for i := range variants {
			if strings.EqualFold(variants[i].Name, v.Name) {
				variants[i] = v
				replaced = true
				break
			}
		}
		if !replaced {
			variants = append(variants, v)
		}
	}
	return variants, nil
}

// selectedController builds a controller for --variant
func selectedController(app *AppContext) (*transition.Controller, config.Variant, error) {
	variants, err := loadVariants(app)
	if err != nil {
		return nil, config.Variant{}, withExitCode(ExitInvalidConfig, err)
	}
	v, ok := config.FindVariant(variants, app.Opts.Variant)
	if !ok {
		return nil, config.Variant{}, withExitCode(ExitInvalidUsage, fmt.Errorf("unknown variant %q", app.Opts.Variant))
	}
	opts, err := v.Options()
	if err != nil {
		return nil, v, withExitCode(ExitInvalidConfig, err)
	}
	ctrl, err := transition.NewController(opts)
	if err != nil {
		return nil, v, withExitCode(ExitInvalidConfig, err)
	}
	return ctrl, v, nil
}
