package cmd

import (
	"log"

	"github.com/anas-shakeel/bmptool/internal/config"
	"github.com/anas-shakeel/bmptool/internal/pipeline"
)

// Transform applies op with param to input and saves it as output.
func Transform(cfg config.Config, op, param, input, output string) error {
	job := pipeline.Job{Op: op, Param: param, Input: input, Output: output}
	if err := pipeline.Run(job, cfg); err != nil {
		return err
	}
	log.Printf("Done: %s", job)
	return nil
}

// Batch runs every job listed in a YAML batch file.
func Batch(cfg config.Config, path string) error {
	jobs, err := pipeline.LoadJobs(path)
	if err != nil {
		return err
	}
	if err := pipeline.RunAll(jobs, cfg); err != nil {
		return err
	}
	log.Printf("Done: %d jobs from %s", len(jobs), path)
	return nil
}
