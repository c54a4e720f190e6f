package cli

import (
	"github.com/m-mizutani/care/pkg/cli/config"
	"github.com/m-mizutani/care/pkg/domain/interfaces"
	"github.com/m-mizutani/care/pkg/domain/types"
	"github.com/m-mizutani/care/pkg/infra/archive"
	"github.com/m-mizutani/care/pkg/infra/magic"
	"github.com/m-mizutani/care/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
)

func buildInspect(fileCfg *config.File, detectionCfg *config.Detection, options *runOptions) (interfaces.InspectUseCase, error) {
	settings, err := fileCfg.Load()
	if err != nil {
		return nil, err
	}

	probe := options.probe
	if probe == nil {
		name := detectionCfg.MagicBackend
		if name == "" {
			name = settings.MagicBackend
		}
		if name == "" {
			name = string(magic.BackendFile)
		}
		backend, err := magic.ParseBackend(name)
		if err != nil {
			return nil, err
		}
		probe = magic.Probe(backend, settings.MagicCommand)
	}

	extRules, err := toRules(settings.Extensions, func(s config.RuleSpec) string { return s.Suffix })
	if err != nil {
		return nil, err
	}
	extensions, err := usecase.NewExtensionTable(extRules...)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid extension rule in config file")
	}

	labelRules, err := toRules(settings.Labels, func(s config.RuleSpec) string { return s.Keyword })
	if err != nil {
		return nil, err
	}
	labels, err := usecase.NewLabelTable(labelRules...)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid label rule in config file")
	}

	resolver := usecase.NewResolver(
		usecase.WithClassifierProbe(probe),
		usecase.WithExtensionTable(extensions),
		usecase.WithLabelTable(labels),
		usecase.WithWarningWriter(options.stderr),
	)

	return usecase.NewInspect(resolver, archive.NewLister()), nil
}

func toRules(specs []config.RuleSpec, key func(config.RuleSpec) string) ([]usecase.Rule, error) {
	rules := make([]usecase.Rule, 0, len(specs))
	for _, s := range specs {
		t, err := types.ParseArchiveType(s.Type)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid rule type in config file", goerr.V("key", key(s)))
		}
		rules = append(rules, usecase.Rule{Key: key(s), Type: t})
	}
	return rules, nil
}
