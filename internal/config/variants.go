package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/download-check/internal/anim"
	"github.com/ytget/download-check/internal/transition"
)

// Built-in variant names
const (
	VariantClassic = "classic"
	VariantSlow    = "slow"
	VariantLooping = "looping"
	VariantRetap   = "retap"
)

// ErrDurationOutOfRange is returned for a variant timing outside the
// settings screen ranges
var ErrDurationOutOfRange = errors.New("duration out of range")

// Variant is a named set of timings for the screen
type Variant struct {
	Name            string `yaml:"name"`
	Description     string `yaml:"description,omitempty"`
	DownloadMillis  int    `yaml:"download_ms"`
	CheckmarkMillis int    `yaml:"checkmark_ms"`
	DownloadEasing  string `yaml:"download_easing,omitempty"`
	CheckmarkEasing string `yaml:"checkmark_easing,omitempty"`
	Reentry         string `yaml:"reentry,omitempty"`
	LoopCheckmark   bool   `yaml:"loop_checkmark,omitempty"`
}

type variantFile struct {
	Variants []Variant `yaml:"variants"`
}

// BuiltinVariants returns the variants shipped with the app
func BuiltinVariants() []Variant {
	return []Variant{
		{
			Name:            VariantClassic,
			Description:     "3s sweep, checkmark halts, presses ignored while animating",
			DownloadMillis:  3000,
			CheckmarkMillis: 1200,
			DownloadEasing:  anim.EasingEaseInOut,
			CheckmarkEasing: anim.EasingLinear,
			Reentry:         string(transition.ReentryIgnore),
		},
		{
			Name:            VariantSlow,
			Description:     "8s sweep with a 3s checkmark",
			DownloadMillis:  8000,
			CheckmarkMillis: 3000,
			DownloadEasing:  anim.EasingEaseInOut,
			CheckmarkEasing: anim.EasingEaseOut,
			Reentry:         string(transition.ReentryIgnore),
		},
		{
			Name:            VariantLooping,
			Description:     "checkmark keeps redrawing after the sweep",
			DownloadMillis:  3000,
			CheckmarkMillis: 1200,
			DownloadEasing:  anim.EasingEaseInOut,
			CheckmarkEasing: anim.EasingLinear,
			Reentry:         string(transition.ReentryIgnore),
			LoopCheckmark:   true,
		},
		{
			Name:            VariantRetap,
			Description:     "a press while animating restarts the sweep",
			DownloadMillis:  5000,
			CheckmarkMillis: 2000,
			DownloadEasing:  anim.EasingEaseInOut,
			CheckmarkEasing: anim.EasingLinear,
			Reentry:         string(transition.ReentryRestart),
		},
	}
}

// LoadVariants decodes a YAML variant list. Missing easings and policies take
// the classic defaults.
func LoadVariants(r io.Reader) ([]Variant, error) {
	var file variantFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("variant file is empty")
		}
		return nil, fmt.Errorf("decode variants: %w", err)
	}
	if len(file.Variants) == 0 {
		return nil, fmt.Errorf("variant file defines no variants")
	}

	seen := make(map[string]bool, len(file.Variants))
	for i := range file.Variants {
		v := &file.Variants[i]
		v.normalize()
		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("variant %d: %w", i+1, err)
		}
		key := strings.ToLower(v.Name)
		if seen[key] {
			return nil, fmt.Errorf("variant %q defined twice", v.Name)
		}
		seen[key] = true
	}
	return file.Variants, nil
}

// LoadVariantsFile reads variants from a YAML file
func LoadVariantsFile(path string) ([]Variant, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open variants: %w", err)
	}
	defer f.Close()

	variants, err := LoadVariants(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return variants, nil
}

// FindVariant looks a variant up by name
func FindVariant(variants []Variant, name string) (Variant, bool) {
	for _, v := range variants {
		if strings.EqualFold(v.Name, name) {
			return v, true
		}
	}
	return Variant{}, false
}

// Validate checks a variant for values the controller would reject
func (v Variant) Validate() error {
	if strings.TrimSpace(v.Name) == "" {
		return fmt.Errorf("variant name is required")
	}
	if v.DownloadMillis <= 0 {
		return fmt.Errorf("variant %s: download_ms %d: %w", v.Name, v.DownloadMillis, anim.ErrInvalidDuration)
	}
	if v.CheckmarkMillis <= 0 {
		return fmt.Errorf("variant %s: checkmark_ms %d: %w", v.Name, v.CheckmarkMillis, anim.ErrInvalidDuration)
	}
	if v.DownloadMillis < MinDownloadMillis || v.DownloadMillis > MaxDownloadMillis {
		return fmt.Errorf("variant %s: download_ms %d not in [%d, %d]: %w",
			v.Name, v.DownloadMillis, MinDownloadMillis, MaxDownloadMillis, ErrDurationOutOfRange)
	}
	if v.CheckmarkMillis < MinCheckmarkMillis || v.CheckmarkMillis > MaxCheckmarkMillis {
		return fmt.Errorf("variant %s: checkmark_ms %d not in [%d, %d]: %w",
			v.Name, v.CheckmarkMillis, MinCheckmarkMillis, MaxCheckmarkMillis, ErrDurationOutOfRange)
	}
	if _, err := anim.ParseEasing(v.DownloadEasing); err != nil {
		return fmt.Errorf("variant %s: download_easing: %w", v.Name, err)
	}
	if _, err := anim.ParseEasing(v.CheckmarkEasing); err != nil {
		return fmt.Errorf("variant %s: checkmark_easing: %w", v.Name, err)
	}
	if _, err := transition.ParseReentryPolicy(v.Reentry); err != nil {
		return fmt.Errorf("variant %s: %w", v.Name, err)
	}
	return nil
}

// DownloadDuration returns the download sweep duration
func (v Variant) DownloadDuration() time.Duration {
	return time.Duration(v.DownloadMillis) * time.Millisecond
}

// CheckmarkDuration returns the checkmark duration
func (v Variant) CheckmarkDuration() time.Duration {
	return time.Duration(v.CheckmarkMillis) * time.Millisecond
}

// Options converts the variant into controller options
func (v Variant) Options() (transition.Options, error) {
	if err := v.Validate(); err != nil {
		return transition.Options{}, err
	}
	downloadCurve, _ := anim.ParseEasing(v.DownloadEasing)
	checkCurve, _ := anim.ParseEasing(v.CheckmarkEasing)

	return transition.Options{
		DownloadDuration:  v.DownloadDuration(),
		CheckmarkDuration: v.CheckmarkDuration(),
		DownloadEasing:    downloadCurve,
		CheckmarkEasing:   checkCurve,
		Reentry:           transition.ReentryPolicy(v.Reentry),
		LoopCheckmark:     v.LoopCheckmark,
	}, nil
}

func (v *Variant) normalize() {
	v.Name = strings.TrimSpace(v.Name)
	if v.DownloadEasing == "" {
		v.DownloadEasing = DefaultDownloadEasing
	}
	if v.CheckmarkEasing == "" {
		v.CheckmarkEasing = DefaultCheckmarkEasing
	}
	if v.Reentry == "" {
		v.Reentry = string(DefaultReentryPolicy)
	}
}
