package config

import (
	"log"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/download-check/internal/anim"
	"github.com/ytget/download-check/internal/transition"
)

// Settings keys for Fyne preferences
const (
	KeyVariant           = "variant"
	KeyDownloadDuration  = "download_duration_ms"
	KeyCheckmarkDuration = "checkmark_duration_ms"
	KeyDownloadEasing    = "download_easing"
	KeyCheckmarkEasing   = "checkmark_easing"
	KeyReentryPolicy     = "reentry_policy"
	KeyLoopCheckmark     = "loop_checkmark"
	KeyLanguage          = "app_language"
)

// Duration bounds in milliseconds
const (
	MinDownloadMillis  = 3000
	MaxDownloadMillis  = 8000
	MinCheckmarkMillis = 1200
	MaxCheckmarkMillis = 3000
)

// Default values
const (
	DefaultVariant         = VariantClassic
	DefaultDownloadMillis  = 3000
	DefaultCheckmarkMillis = 1200
	DefaultDownloadEasing  = anim.EasingEaseInOut
	DefaultCheckmarkEasing = anim.EasingLinear
	DefaultReentryPolicy   = transition.ReentryIgnore
	DefaultLoopCheckmark   = false
	DefaultLanguage        = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDuration returns the download sweep duration
func (s *Settings) GetDownloadDuration() time.Duration {
	value := s.app.Preferences().Int(KeyDownloadDuration)
	if value <= 0 {
		s.SetDownloadDuration(DefaultDownloadMillis * time.Millisecond)
		return DefaultDownloadMillis * time.Millisecond
	}
	return time.Duration(value) * time.Millisecond
}

// SetDownloadDuration sets the download sweep duration, clamped to 3-8s
func (s *Settings) SetDownloadDuration(d time.Duration) {
	s.app.Preferences().SetInt(KeyDownloadDuration, clampMillis(d, MinDownloadMillis, MaxDownloadMillis))
}

// GetCheckmarkDuration returns the checkmark draw-in duration
func (s *Settings) GetCheckmarkDuration() time.Duration {
	value := s.app.Preferences().Int(KeyCheckmarkDuration)
	if value <= 0 {
		s.SetCheckmarkDuration(DefaultCheckmarkMillis * time.Millisecond)
		return DefaultCheckmarkMillis * time.Millisecond
	}
	return time.Duration(value) * time.Millisecond
}

// SetCheckmarkDuration sets the checkmark draw-in duration, clamped to 1.2-3s
func (s *Settings) SetCheckmarkDuration(d time.Duration) {
	s.app.Preferences().SetInt(KeyCheckmarkDuration, clampMillis(d, MinCheckmarkMillis, MaxCheckmarkMillis))
}

// GetDownloadEasing returns the easing name of the download sweep
func (s *Settings) GetDownloadEasing() string {
	return s.easing(KeyDownloadEasing, DefaultDownloadEasing)
}

// SetDownloadEasing sets the easing name of the download sweep
func (s *Settings) SetDownloadEasing(name string) {
	s.setEasing(KeyDownloadEasing, name, DefaultDownloadEasing)
}

// GetCheckmarkEasing returns the easing name of the checkmark run
func (s *Settings) GetCheckmarkEasing() string {
	return s.easing(KeyCheckmarkEasing, DefaultCheckmarkEasing)
}

// SetCheckmarkEasing sets the easing name of the checkmark run
func (s *Settings) SetCheckmarkEasing(name string) {
	s.setEasing(KeyCheckmarkEasing, name, DefaultCheckmarkEasing)
}

// GetReentryPolicy returns what a press does while animating
func (s *Settings) GetReentryPolicy() transition.ReentryPolicy {
	value := s.app.Preferences().String(KeyReentryPolicy)
	policy, err := transition.ParseReentryPolicy(value)
	if err != nil {
		s.SetReentryPolicy(DefaultReentryPolicy)
		return DefaultReentryPolicy
	}
	return policy
}

// SetReentryPolicy sets what a press does while animating
func (s *Settings) SetReentryPolicy(policy transition.ReentryPolicy) {
	if _, err := transition.ParseReentryPolicy(string(policy)); err != nil {
		policy = DefaultReentryPolicy
	}
	s.app.Preferences().SetString(KeyReentryPolicy, string(policy))
}

// GetLoopCheckmark returns whether the checkmark keeps redrawing
func (s *Settings) GetLoopCheckmark() bool {
	return s.app.Preferences().BoolWithFallback(KeyLoopCheckmark, DefaultLoopCheckmark)
}

// SetLoopCheckmark sets whether the checkmark keeps redrawing
func (s *Settings) SetLoopCheckmark(loop bool) {
	s.app.Preferences().SetBool(KeyLoopCheckmark, loop)
}

// GetVariant returns the name of the last applied variant
func (s *Settings) GetVariant() string {
	name := s.app.Preferences().String(KeyVariant)
	if name == "" {
		s.app.Preferences().SetString(KeyVariant, DefaultVariant)
		return DefaultVariant
	}
	return name
}

// ApplyVariant stores every timing field of v and remembers its name
func (s *Settings) ApplyVariant(v Variant) error {
	if err := v.Validate(); err != nil {
		return err
	}
	s.SetDownloadDuration(v.DownloadDuration())
	s.SetCheckmarkDuration(v.CheckmarkDuration())
	s.SetDownloadEasing(v.DownloadEasing)
	s.SetCheckmarkEasing(v.CheckmarkEasing)
	s.SetReentryPolicy(transition.ReentryPolicy(v.Reentry))
	s.SetLoopCheckmark(v.LoopCheckmark)
	s.app.Preferences().SetString(KeyVariant, v.Name)
	return nil
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetEasingOptions returns available easing names
func (s *Settings) GetEasingOptions() []string {
	return anim.EasingNames()
}

// GetReentryPolicyOptions returns available re-entry policies
func (s *Settings) GetReentryPolicyOptions() []transition.ReentryPolicy {
	return []transition.ReentryPolicy{transition.ReentryIgnore, transition.ReentryRestart}
}

// Options builds controller options from the stored settings
func (s *Settings) Options() transition.Options {
	opts := transition.DefaultOptions()
	opts.DownloadDuration = s.GetDownloadDuration()
	opts.CheckmarkDuration = s.GetCheckmarkDuration()
	if curve, err := anim.ParseEasing(s.GetDownloadEasing()); err == nil {
		opts.DownloadEasing = curve
	}
	if curve, err := anim.ParseEasing(s.GetCheckmarkEasing()); err == nil {
		opts.CheckmarkEasing = curve
	}
	opts.Reentry = s.GetReentryPolicy()
	opts.LoopCheckmark = s.GetLoopCheckmark()
	return opts
}

func (s *Settings) easing(key, fallback string) string {
	name := s.app.Preferences().String(key)
	if _, err := anim.ParseEasing(name); err != nil {
		s.app.Preferences().SetString(key, fallback)
		return fallback
	}
	return name
}

func (s *Settings) setEasing(key, name, fallback string) {
	if _, err := anim.ParseEasing(name); err != nil {
		log.Printf("settings: %v, using %s", err, fallback)
		name = fallback
	}
	s.app.Preferences().SetString(key, name)
}

func clampMillis(d time.Duration, lo, hi int) int {
	ms := int(d / time.Millisecond)
	if ms < lo {
		ms = lo
	}
	if ms > hi {
		ms = hi
	}
	return ms
}
