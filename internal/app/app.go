package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sync"

	"github.com/patrickprogramme/substats/internal/assets"
	"github.com/patrickprogramme/substats/internal/clipboard"
	"github.com/patrickprogramme/substats/internal/config"
	"github.com/patrickprogramme/substats/internal/logger"
	"github.com/patrickprogramme/substats/internal/report"
	"github.com/patrickprogramme/substats/internal/stats"
	"github.com/patrickprogramme/substats/internal/subtitles"
	"github.com/patrickprogramme/substats/internal/ui"
)

// ErrNoReport : Export ou Copy appelés avant tout calcul.
var ErrNoReport = errors.New("aucun rapport calculé")

// RunOptions : actions à effectuer après le calcul du rapport.
type RunOptions struct {
	Export     bool
	ExportPath string // vide : <output_dir>/<nom>.Stats.txt
	Copy       bool
	Quiet      bool // ne pas afficher le rapport sur stdout
}

// Report : dernier rapport calculé.
type Report struct {
	Source string
	Doc    *subtitles.Document
	Result *stats.Result
	Text   []byte
}

// App orchestre chargement, calcul, rendu, export et presse-papier.
type App struct {
	cfg      *config.Config
	log      logger.Logger
	ui       ui.Interface
	renderer *report.Renderer
	clip     clipboard.Interface

	labels   stats.Labels
	strategy stats.Strategy
	width    *stats.FontMeasurer // nil si wide_lines désactivé

	mu   sync.Mutex
	last *Report
}

// New construit l'application. Les libellés, la stratégie de comptage et la
// police sont résolus une fois depuis cfg.
//   - renderer nil : template embarqué ;
//   - labelsFS nil : packs de libellés embarqués (sinon un fs contenant lang/<code>.yaml) ;
//   - clip nil : presse-papier système.
func New(cfg *config.Config, log logger.Logger, uiClient ui.Interface, renderer *report.Renderer, labelsFS fs.FS, clip clipboard.Interface) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}
	if uiClient == nil {
		uiClient = ui.NewTerminal()
	}
	if clip == nil {
		clip = clipboard.System()
	}
	if renderer == nil {
		r, err := report.NewRendererFromFS(assets.Embedded, assets.DefaultTemplatePaths)
		if err != nil {
			return nil, err
		}
		renderer = r
	}

	if labelsFS == nil {
		labelsFS = assets.Embedded
	}
	labels, err := stats.LoadLabels(labelsFS, cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("libellés: %w", err)
	}
	strategy, err := stats.ParseStrategy(cfg.CountStrategy)
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:      cfg,
		log:      log,
		ui:       uiClient,
		renderer: renderer,
		clip:     clip,
		labels:   labels,
		strategy: strategy,
	}
	if cfg.WideLines.Enabled {
		m, err := stats.NewFontMeasurer(cfg.WideLines.FontSize)
		if err != nil {
			return nil, fmt.Errorf("police: %w", err)
		}
		a.width = m
	}
	return a, nil
}

// Close libère la police éventuelle.
func (a *App) Close() error {
	if a.width == nil {
		return nil
	}
	return a.width.Close()
}

// Analyze charge source (fichier ou URL), calcule les statistiques et rend
// le rapport. Le résultat devient le rapport courant pour Export et Copy.
func (a *App) Analyze(ctx context.Context, source string) (*Report, error) {
	log := a.log.WithField("source", source)

	doc, err := subtitles.Load(ctx, source, subtitles.LoadOptions{
		FetchTimeout: a.cfg.FetchTimeout(),
		MaxBytes:     a.cfg.Fetch.MaxBytes,
	})
	if err != nil {
		return nil, err
	}
	log.Debug(ctx, "Document chargé : %d répliques (%s)", doc.Len(), doc.Format)

	opts := stats.Options{
		Strategy:       a.strategy,
		Labels:         &a.labels,
		DetectLanguage: a.cfg.DetectLanguage,
	}
	if a.width != nil {
		opts.Width = a.width
	}
	res := stats.Compute(doc, opts)

	text, err := a.renderer.Render(assets.ReportTemplate, report.NewData(source, res))
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	rep := &Report{Source: source, Doc: doc, Result: res, Text: text}
	a.mu.Lock()
	a.last = rep
	a.mu.Unlock()
	return rep, nil
}

// Run : Analyze puis affichage, export et copie selon opts.
// Un échec du presse-papier est signalé sans interrompre l'exécution.
func (a *App) Run(ctx context.Context, source string, opts RunOptions) error {
	rep, err := a.Analyze(ctx, source)
	if err != nil {
		return err
	}
	if !opts.Quiet {
		a.ui.PrintReport(ctx, rep.Text)
	}

	if opts.Export {
		path, err := a.Export(opts.ExportPath)
		if err != nil {
			return err
		}
		a.ui.PrintInfo(ctx, fmt.Sprintf("Rapport exporté : %s", path))
	}

	if opts.Copy || a.cfg.CopyToClipboard {
		if err := a.Copy(ctx); err != nil {
			a.ui.PrintError(ctx, fmt.Sprintf("copie dans le presse-papier impossible : %v", err))
		} else {
			a.ui.PrintInfo(ctx, "Rapport copié dans le presse-papier.")
		}
	}
	return nil
}

// Last retourne le rapport courant (nil si aucun).
func (a *App) Last() *Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.last
}
