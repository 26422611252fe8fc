// pipeline loads a bitmap, applies one transform and saves the result
package pipeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anas-shakeel/bmptool/internal/adjustments"
	"github.com/anas-shakeel/bmptool/internal/bmp"
	"github.com/anas-shakeel/bmptool/internal/config"
	"github.com/anas-shakeel/bmptool/internal/utils"
)

const (
	OpScale  = "scale"
	OpRotate = "rotate"
	OpMirror = "mirror"
	OpCrop   = "crop"
)

// Job is one requested transform of one file.
type Job struct {
	Op     string `yaml:"op"`
	Param  string `yaml:"param"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

func (j Job) String() string {
	return fmt.Sprintf("%s %s %s -> %s", j.Op, j.Param, j.Input, j.Output)
}

// Step is a transform with its parameters bound.
type Step func(s *bmp.Surface) (*bmp.Surface, error)

// Plan parses the job's operation and parameter without touching any file.
func (j Job) Plan(cfg config.Config) (Step, error) {
	switch strings.ToLower(j.Op) {
	case OpScale:
		percent, err := strconv.Atoi(strings.TrimSpace(j.Param))
		if err != nil {
			return nil, fmt.Errorf("%w: scale %q is not an integer percentage", adjustments.ErrParameter, j.Param)
		}
		return func(s *bmp.Surface) (*bmp.Surface, error) {
			return adjustments.Scale(s, percent)
		}, nil

	case OpRotate:
		degrees, err := strconv.ParseFloat(strings.TrimSpace(j.Param), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: rotation %q is not a number of degrees", adjustments.ErrParameter, j.Param)
		}
		return func(s *bmp.Surface) (*bmp.Surface, error) {
			return adjustments.RotateFill(s, degrees, cfg.Background)
		}, nil

	case OpMirror:
		axis, err := adjustments.ParseAxis(strings.TrimSpace(j.Param))
		if err != nil {
			return nil, err
		}
		return func(s *bmp.Surface) (*bmp.Surface, error) {
			return s, adjustments.Mirror(s, axis)
		}, nil

	case OpCrop:
		r, err := utils.ParseInts(j.Param, 4)
		if err != nil {
			return nil, fmt.Errorf("%w: crop: %v", adjustments.ErrParameter, err)
		}
		return func(s *bmp.Surface) (*bmp.Surface, error) {
			return adjustments.Crop(s, r[0], r[1], r[2], r[3])
		}, nil
	}

	return nil, fmt.Errorf("%w: unknown operation %q", adjustments.ErrParameter, j.Op)
}
