package ui

import "github.com/ytget/download-check/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyTapToDownload     = "tap_to_download"
	KeyDownloading       = "downloading"
	KeyCompleting        = "completing"
	KeyDone              = "done"
	KeyReset             = "reset"
	KeyVariant           = "variant"
	KeyDownloadDuration  = "download_duration"
	KeyCheckmarkDuration = "checkmark_duration"
	KeyDownloadEasing    = "download_easing"
	KeyCheckmarkEasing   = "checkmark_easing"
	KeyReentryPolicy     = "reentry_policy"
	KeyLoopCheckmark     = "loop_checkmark"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInvalidSettings   = "invalid_settings"
	KeyAlreadyAnimating  = "already_animating"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// CaptionKey returns the text key of the status caption shown in state
func CaptionKey(state model.TransitionState) string {
	switch state {
	case model.StateDownloading:
		return KeyDownloading
	case model.StateCompleting:
		return KeyCompleting
	case model.StateDone:
		return KeyDone
	default:
		return KeyTapToDownload
	}
}

// Caption returns the localized status caption for state
func (l *Localization) Caption(state model.TransitionState) string {
	return l.GetText(CaptionKey(state))
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Download",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyTapToDownload:     "Tap to download",
		KeyDownloading:       "Downloading…",
		KeyCompleting:        "Finishing…",
		KeyDone:              "Done",
		KeyReset:             "Reset",
		KeyVariant:           "Variant",
		KeyDownloadDuration:  "Download duration (ms)",
		KeyCheckmarkDuration: "Checkmark duration (ms)",
		KeyDownloadEasing:    "Download easing",
		KeyCheckmarkEasing:   "Checkmark easing",
		KeyReentryPolicy:     "Tap while animating",
		KeyLoopCheckmark:     "Loop checkmark",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyInvalidSettings:   "Invalid settings",
		KeyAlreadyAnimating:  "Already animating",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Загрузка",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyTapToDownload:     "Нажмите, чтобы скачать",
		KeyDownloading:       "Загрузка…",
		KeyCompleting:        "Завершение…",
		KeyDone:              "Готово",
		KeyReset:             "Сбросить",
		KeyVariant:           "Вариант",
		KeyDownloadDuration:  "Длительность загрузки (мс)",
		KeyCheckmarkDuration: "Длительность галочки (мс)",
		KeyDownloadEasing:    "Сглаживание загрузки",
		KeyCheckmarkEasing:   "Сглаживание галочки",
		KeyReentryPolicy:     "Нажатие во время анимации",
		KeyLoopCheckmark:     "Повторять галочку",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyInvalidSettings:   "Неверные настройки",
		KeyAlreadyAnimating:  "Анимация уже идёт",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Download",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyTapToDownload:     "Toque para baixar",
		KeyDownloading:       "Baixando…",
		KeyCompleting:        "Finalizando…",
		KeyDone:              "Concluído",
		KeyReset:             "Reiniciar",
		KeyVariant:           "Variante",
		KeyDownloadDuration:  "Duração do download (ms)",
		KeyCheckmarkDuration: "Duração do check (ms)",
		KeyDownloadEasing:    "Suavização do download",
		KeyCheckmarkEasing:   "Suavização do check",
		KeyReentryPolicy:     "Toque durante a animação",
		KeyLoopCheckmark:     "Repetir check",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyInvalidSettings:   "Configurações inválidas",
		KeyAlreadyAnimating:  "Animação em andamento",
	}
}
