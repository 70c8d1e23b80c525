package ui

import "github.com/ytget/multi-converter/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyConvert            = "convert"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyHelp               = "help"
	KeyAbout              = "about"
	KeyLanguage           = "language"
	KeyServerURL          = "server_url"
	KeyRequestTimeout     = "request_timeout"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyInvalidURL         = "invalid_url"
	KeyInvalidTimeout     = "invalid_timeout"
	KeyEnterValue         = "enter_value"
	KeyEnterAmount        = "enter_amount"
	KeyEnterNumber        = "enter_number"
	KeyPleaseEnterValue   = "please_enter_value"
	KeyPleaseEnterAmount  = "please_enter_amount"
	KeyPleaseEnterNumber  = "please_enter_number"
	KeyFrom               = "from"
	KeyTo                 = "to"
	KeyResult             = "result"
	KeyServiceUnavailable = "service_unavailable"
	KeyVersion            = "version"
	KeyFeatures           = "features"
	KeyTabLength          = "tab_length"
	KeyTabWeight          = "tab_weight"
	KeyTabTemperature     = "tab_temperature"
	KeyTabVolume          = "tab_volume"
	KeyTabCurrency        = "tab_currency"
	KeyTabNumberBase      = "tab_number_base"
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

	// Final fallback - return key itself
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

// CategoryTitle returns the tab label of a category
func (l *Localization) CategoryTitle(c model.Category) string {
	switch c {
	case model.CategoryLength:
		return l.GetText(KeyTabLength)
	case model.CategoryWeight:
		return l.GetText(KeyTabWeight)
	case model.CategoryTemperature:
		return l.GetText(KeyTabTemperature)
	case model.CategoryVolume:
		return l.GetText(KeyTabVolume)
	case model.CategoryCurrency:
		return l.GetText(KeyTabCurrency)
	case model.CategoryNumberBase:
		return l.GetText(KeyTabNumberBase)
	}
	return c.String()
}

// EmptyInputText returns the message shown when a category's input is blank
func (l *Localization) EmptyInputText(c model.Category) string {
	switch c {
	case model.CategoryCurrency:
		return l.GetText(KeyPleaseEnterAmount)
	case model.CategoryNumberBase:
		return l.GetText(KeyPleaseEnterNumber)
	}
	return l.GetText(KeyPleaseEnterValue)
}

// InputPlaceholder returns the placeholder of a category's input field
func (l *Localization) InputPlaceholder(c model.Category) string {
	switch c {
	case model.CategoryCurrency:
		return l.GetText(KeyEnterAmount)
	case model.CategoryNumberBase:
		return l.GetText(KeyEnterNumber)
	}
	return l.GetText(KeyEnterValue)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Multi-Converter",
		KeyConvert:            "Convert",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyHelp:               "Help",
		KeyAbout:              "About",
		KeyLanguage:           "Language",
		KeyServerURL:          "Server URL",
		KeyRequestTimeout:     "Request Timeout (seconds)",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyInvalidURL:         "Invalid URL",
		KeyInvalidTimeout:     "Timeout must be a whole number of seconds",
		KeyEnterValue:         "Enter value",
		KeyEnterAmount:        "Enter amount",
		KeyEnterNumber:        "Enter number",
		KeyPleaseEnterValue:   "Please enter a value",
		KeyPleaseEnterAmount:  "Please enter an amount",
		KeyPleaseEnterNumber:  "Please enter a number",
		KeyFrom:               "From",
		KeyTo:                 "To",
		KeyResult:             "Result",
		KeyServiceUnavailable: "Service unavailable",
		KeyVersion:            "Version",
		KeyFeatures:           "Features",
		KeyTabLength:          "Length",
		KeyTabWeight:          "Weight",
		KeyTabTemperature:     "Temperature",
		KeyTabVolume:          "Volume",
		KeyTabCurrency:        "Currency",
		KeyTabNumberBase:      "Number Base",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Мульти-конвертер",
		KeyConvert:            "Конвертировать",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyHelp:               "Справка",
		KeyAbout:              "О программе",
		KeyLanguage:           "Язык",
		KeyServerURL:          "Адрес сервера",
		KeyRequestTimeout:     "Тайм-аут запроса (секунды)",
		KeySave:               "Сохранить",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyInvalidURL:         "Неверный URL",
		KeyInvalidTimeout:     "Тайм-аут должен быть целым числом секунд",
		KeyEnterValue:         "Введите значение",
		KeyEnterAmount:        "Введите сумму",
		KeyEnterNumber:        "Введите число",
		KeyPleaseEnterValue:   "Пожалуйста, введите значение",
		KeyPleaseEnterAmount:  "Пожалуйста, введите сумму",
		KeyPleaseEnterNumber:  "Пожалуйста, введите число",
		KeyFrom:               "Из",
		KeyTo:                 "В",
		KeyResult:             "Результат",
		KeyServiceUnavailable: "Сервис недоступен",
		KeyVersion:            "Версия",
		KeyFeatures:           "Возможности",
		KeyTabLength:          "Длина",
		KeyTabWeight:          "Вес",
		KeyTabTemperature:     "Температура",
		KeyTabVolume:          "Объём",
		KeyTabCurrency:        "Валюта",
		KeyTabNumberBase:      "Системы счисления",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Multi-Conversor",
		KeyConvert:            "Converter",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyHelp:               "Ajuda",
		KeyAbout:              "Sobre",
		KeyLanguage:           "Idioma",
		KeyServerURL:          "URL do Servidor",
		KeyRequestTimeout:     "Tempo Limite (segundos)",
		KeySave:               "Salvar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyInvalidURL:         "URL inválida",
		KeyInvalidTimeout:     "O tempo limite deve ser um número inteiro de segundos",
		KeyEnterValue:         "Digite o valor",
		KeyEnterAmount:        "Digite a quantia",
		KeyEnterNumber:        "Digite o número",
		KeyPleaseEnterValue:   "Por favor, digite um valor",
		KeyPleaseEnterAmount:  "Por favor, digite uma quantia",
		KeyPleaseEnterNumber:  "Por favor, digite um número",
		KeyFrom:               "De",
		KeyTo:                 "Para",
		KeyResult:             "Resultado",
		KeyServiceUnavailable: "Serviço indisponível",
		KeyVersion:            "Versão",
		KeyFeatures:           "Recursos",
		KeyTabLength:          "Comprimento",
		KeyTabWeight:          "Peso",
		KeyTabTemperature:     "Temperatura",
		KeyTabVolume:          "Volume",
		KeyTabCurrency:        "Moeda",
		KeyTabNumberBase:      "Base Numérica",
	}
}
