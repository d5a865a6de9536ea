package testsupport

import (
	"path/filepath"
	"testing"

	"alcfg/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config rooted in a unique temp directory per test:
// inputs are searched under <base>/sharecfgdata and <base>/ShareCfg, outputs
// land in <base>/out.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.SearchPaths = []string{
		filepath.Join(base, "sharecfgdata"),
		filepath.Join(base, "ShareCfg"),
	}
	cfgVal.Paths.OutputDir = filepath.Join(base, "out")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithOnlyStages enables exactly the named pipeline stages.
func WithOnlyStages(names ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Outputs = config.Outputs{}
		for _, name := range names {
			switch name {
			case "combined":
				b.cfg.Outputs.Combined = true
			case "voice":
				b.cfg.Outputs.Voice = true
			case "story":
				b.cfg.Outputs.Story = true
			case "aux":
				b.cfg.Outputs.Aux = true
			default:
				b.t.Fatalf("unknown stage %q", name)
			}
		}
	}
}

// InputDir returns the highest-priority input directory of a config built by NewConfig.
func InputDir(cfg *config.Config) string {
	return cfg.Paths.SearchPaths[0]
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.OutputDir)
}
