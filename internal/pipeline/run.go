package pipeline

import (
	"fmt"
	"log"

	"github.com/anas-shakeel/bmptool/internal/bmp"
	"github.com/anas-shakeel/bmptool/internal/config"
)

// Run executes a single job. The output file is only created once the input
// has been decoded and transformed successfully.
func Run(job Job, cfg config.Config) error {
	step, err := job.Plan(cfg)
	if err != nil {
		return err
	}

	bitmap, err := bmp.ReadBitmap(job.Input)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("Read %s: %dx%d, %s", job.Input, bitmap.Width, bitmap.Height, bitmap.Orientation)
	}

	out, err := step(bitmap.Surface)
	if err != nil {
		return fmt.Errorf("%s: %w", job.Op, err)
	}
	if cfg.Verbose {
		log.Printf("Applied %s %s: %dx%d -> %dx%d", job.Op, job.Param, bitmap.Width, bitmap.Height, out.Width, out.Height)
	}

	bitmap.Surface = out
	if err := bitmap.Save(job.Output); err != nil {
		return err
	}
	if cfg.Verbose {
		log.Printf("Wrote %s: %d bytes", job.Output, bitmap.Header.BFHeader.Size)
	}
	return nil
}

// RunAll executes jobs in order and stops at the first failure.
func RunAll(jobs []Job, cfg config.Config) error {
	for i, job := range jobs {
		if err := Run(job, cfg); err != nil {
			return fmt.Errorf("job %d (%s): %w", i+1, job, err)
		}
	}
	return nil
}
