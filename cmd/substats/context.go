package main

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/patrickprogramme/substats/internal/app"
	"github.com/patrickprogramme/substats/internal/assets"
	"github.com/patrickprogramme/substats/internal/bootstrap"
	"github.com/patrickprogramme/substats/internal/config"
	"github.com/patrickprogramme/substats/internal/fsutil"
	"github.com/patrickprogramme/substats/internal/logger"
	"github.com/patrickprogramme/substats/internal/report"
	"github.com/patrickprogramme/substats/internal/ui"
)

// commandContext partage la config et le logger entre les sous-commandes.
type commandContext struct {
	binDir       string
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
	log        logger.Logger
}

func newCommandContext(binDir string, configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		binDir:       binDir,
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag != nil {
		if p := strings.TrimSpace(*c.configFlag); p != "" {
			return p
		}
	}
	return filepath.Join(c.binDir, config.DefaultFileName)
}

// ensureConfig crée la config par défaut si besoin puis la charge (une seule fois).
func (c *commandContext) ensureConfig(ctx context.Context) (*config.Config, error) {
	c.configOnce.Do(func() {
		path := c.configPath()
		created, err := bootstrap.EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset)
		if err != nil {
			c.configErr = err
			return
		}
		if created {
			c.logger().Info(ctx, "Fichier de configuration créé : %s", path)
		}
		cfg, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.logLevelFlag == nil || strings.TrimSpace(*c.logLevelFlag) == "" {
			c.log = logger.New(cfg.LogLevel)
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger : niveau du flag --log-level, sinon celui de la config.
func (c *commandContext) logger() logger.Logger {
	if c.log == nil {
		level := "info"
		if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
			level = *c.logLevelFlag
		}
		c.log = logger.New(level)
	}
	return c.log
}

// labelsFS : binDir si des packs y ont été exportés ("substats templates"),
// sinon les packs embarqués.
func (c *commandContext) labelsFS() fs.FS {
	if ok, err := fsutil.DirHasMatchingFiles(filepath.Join(c.binDir, "lang"), []string{"*.yaml"}); err == nil && ok {
		return os.DirFS(c.binDir)
	}
	return assets.Embedded
}

// newApp construit l'application avec les sorties de cmd.
func (c *commandContext) newApp(cfg *config.Config, out, errOut io.Writer) (*app.App, error) {
	renderer, err := report.DefaultRenderer(c.binDir, assets.Embedded, assets.ReportTemplate)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, c.logger(), ui.NewWriters(out, errOut), renderer, c.labelsFS(), nil)
}
