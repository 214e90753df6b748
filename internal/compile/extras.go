package compile

import (
	"context"
	"fmt"
	"time"

	"go-job-compiler/internal/config"
	"go-job-compiler/internal/database"
	"go-job-compiler/internal/dedup"
	"go-job-compiler/internal/pdf"
	"go-job-compiler/internal/report"
	"go-job-compiler/internal/reporter"
	"go-job-compiler/internal/sftpclient"
)

// extra is an optional output run after the reports are saved. Its failure
// never fails the run.
type extra struct {
	name string
	run  func(ctx context.Context, c *Compiler, d report.Data, res *Result) error
}

const extraTimeout = 2 * time.Minute

func defaultExtras(cfg *config.Config) []extra {
	var xs []extra
	if cfg.History {
		xs = append(xs, extra{"history", runHistory})
	}
	if cfg.HasFormat(string(report.FormatPDF)) {
		xs = append(xs, extra{"pdf export", runPDF})
	}
	if cfg.DatabaseURL != "" {
		xs = append(xs, extra{"database archive", runArchive})
	}
	if cfg.SFTP.Enabled {
		xs = append(xs, extra{"sftp upload", runUpload})
	}
	if cfg.TelegramEnabled() {
		xs = append(xs, extra{"telegram", runTelegram})
	}
	return xs
}

// runHistory counts linked jobs no earlier run has reported, then remembers
// this run's links.
func runHistory(_ context.Context, c *Compiler, _ report.Data, res *Result) error {
	cache := dedup.NewJobCache(c.cfg.CachePath)
	var links []string
	for _, j := range res.Groups.All() {
		if !j.HasLink() {
			continue
		}
		if !cache.IsSeen(j.Link) {
			res.NewSinceLast++
		}
		links = append(links, j.Link)
	}
	res.HistoryEnabled = true
	c.logger.Printf("🆕 New since last run: %d", res.NewSinceLast)
	return cache.Add(links)
}

func runPDF(ctx context.Context, c *Compiler, d report.Data, res *Result) error {
	ctx, cancel := context.WithTimeout(ctx, extraTimeout)
	defer cancel()

	html, err := report.RenderHTML(d)
	if err != nil {
		return err
	}
	pdfBytes, err := pdf.NewGenerator().Generate(ctx, html)
	if err != nil {
		return err
	}
	path := res.Saved.Output.Path(report.FormatPDF)
	if err := pdf.SaveToFile(pdfBytes, path); err != nil {
		return err
	}
	res.Saved.Paths = append(res.Saved.Paths, path)
	c.logger.Printf("✅ PDF saved to: %s", path)
	return nil
}

func runArchive(ctx context.Context, c *Compiler, _ report.Data, res *Result) error {
	ctx, cancel := context.WithTimeout(ctx, extraTimeout)
	defer cancel()

	repo, err := database.ConnectDB(ctx, c.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}
	n, err := repo.ArchiveRun(ctx, res.RunID, res.Groups.All())
	if err != nil {
		return err
	}
	c.logger.Printf("🗄️ Archived %d jobs for run %s", n, res.RunID)
	return nil
}

func runUpload(ctx context.Context, c *Compiler, _ report.Data, res *Result) error {
	ctx, cancel := context.WithTimeout(ctx, extraTimeout)
	defer cancel()

	s := c.cfg.SFTP
	cfg := sftpclient.Config{
		Host:                  s.Host,
		Port:                  s.Port,
		User:                  s.User,
		Pass:                  s.Pass,
		RemoteDir:             s.RemoteDir,
		InsecureIgnoreHostKey: s.InsecureIgnoreHostKey,
	}
	n, err := sftpclient.UploadFiles(ctx, cfg, res.Saved.Paths)
	if err != nil {
		return fmt.Errorf("uploaded %d of %d files: %w", n, len(res.Saved.Paths), err)
	}
	c.logger.Printf("📤 Uploaded %d files to %s:%s", n, s.Host, s.RemoteDir)
	return nil
}

func runTelegram(_ context.Context, c *Compiler, _ report.Data, res *Result) error {
	tr, err := reporter.NewTelegramReporter(c.cfg)
	if err != nil {
		return err
	}
	return tr.SendSummary(summaryOf(res))
}

func summaryOf(res *Result) reporter.RunSummary {
	return reporter.RunSummary{
		FilesProcessed: res.FilesProcessed,
		FilesSkipped:   res.FilesSkipped,
		TotalExtracted: res.TotalExtracted,
		NewSinceLast:   res.NewSinceLast,
		HistoryEnabled: res.HistoryEnabled,
		Summary:        res.Summary,
		ReportPath:     res.ReportPath(),
	}
}
