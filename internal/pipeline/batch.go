package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

type batchFile struct {
	Jobs []Job `yaml:"jobs"`
}

// LoadJobs reads a YAML batch file:
//
//	jobs:
//	  - op: scale
//	    param: 50
//	    input: in.bmp
//	    output: half.bmp
//
// Relative input and output paths are resolved against the batch file's directory.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file '%s': %w", path, err)
	}

	var batch batchFile
	if err := yaml.UnmarshalStrict(data, &batch); err != nil {
		return nil, fmt.Errorf("failed to parse batch file '%s': %w", path, err)
	}
	if len(batch.Jobs) == 0 {
		return nil, errors.New("batch file '" + path + "' contains no jobs")
	}

	dir := filepath.Dir(path)
	for i := range batch.Jobs {
		job := &batch.Jobs[i]
		if job.Input == "" || job.Output == "" {
			return nil, fmt.Errorf("batch file '%s': job %d needs both input and output", path, i+1)
		}
		job.Input = resolve(dir, job.Input)
		job.Output = resolve(dir, job.Output)
	}
	return batch.Jobs, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
