// Package i18n 提供国际化支持
// 负责管理错误消息与日志消息的语言包
package i18n

import (
	"sync"

	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/ru"
	ut "github.com/go-playground/universal-translator"

	"github.com/insania/files/internal/logger"
)

// 支持的语言
const (
	LangRuRU = "ru-RU"
	LangEnUS = "en-US"
)

var (
	instance *I18n
	once     sync.Once

	// 语言包存储
	translations = map[string]map[string]string{
		LangRuRU: {
			"error":                   "Ошибка в зоне файлов",
			"deleted_file":            "Файл удалён в зоне файлов",
			"deleted_file_type":       "Тип файла удалён в зоне файлов",
			"empty_connection_string": "Пустая строка подключения к базе данных файлов",
			"empty_entity":            "Пустая сущность в зоне файлов",
			"empty_file":              "Пустой файл в зоне файлов",
			"empty_file_type":         "Пустой тип файла в зоне файлов",
			"empty_scripts_path":      "Пустой путь к скриптам в зоне файлов",
			"incorrect_content_type":  "Некорректный тип контента в зоне файлов",
			"not_executed_script":     "Не выполнен скрипт в зоне файлов",
			"not_found_file_type":     "Не найден тип файла в зоне файлов",
			"not_found_file":          "Не найден файл в зоне файлов",

			"entered_get_by_id_file":       "Вошли в метод получения файла по идентификатору",
			"entered_get_by_id_file_type":  "Вошли в метод получения типа файла по идентификатору",
			"entered_get_list_files":       "Вошли в метод получения списка файлов",
			"entered_get_list_files_types": "Вошли в метод получения списка типов файлов",
			"entered_initialize":           "Вошли в метод инициализации данных",
			"initialization_structure":     "Инициализация структуры",
			"execute_script":               "Выполнение скрипта",
			"executed_script":              "Выполнен скрипт",

			"unknown_error": "Неизвестная ошибка",
		},
		LangEnUS: {
			"error":                   "Files zone error",
			"deleted_file":            "File is deleted",
			"deleted_file_type":       "File type is deleted",
			"empty_connection_string": "Empty files database connection string",
			"empty_entity":            "Empty entity",
			"empty_file":              "Empty file",
			"empty_file_type":         "Empty file type",
			"empty_scripts_path":      "Empty scripts path",
			"incorrect_content_type":  "Incorrect content type",
			"not_executed_script":     "Script was not executed",
			"not_found_file_type":     "File type not found",
			"not_found_file":          "File not found",

			"entered_get_by_id_file":       "Entered get file by id",
			"entered_get_by_id_file_type":  "Entered get file type by id",
			"entered_get_list_files":       "Entered get files list",
			"entered_get_list_files_types": "Entered get files types list",
			"entered_initialize":           "Entered data initialization",
			"initialization_structure":     "Structure initialization",
			"execute_script":               "Executing script",
			"executed_script":              "Executed script",

			"unknown_error": "Unknown Error",
		},
	}
)

// I18n 国际化管理器
type I18n struct {
	mu          sync.RWMutex
	translators map[string]ut.Translator
	defaultLang string
}

// GetInstance 获取I18n单例
func GetInstance() *I18n {
	once.Do(func() {
		instance = &I18n{
			translators: make(map[string]ut.Translator),
			defaultLang: LangRuRU,
		}
		instance.initTranslators()
	})
	return instance
}

// initTranslators 初始化翻译器
func (i *I18n) initTranslators() {
	ruRU := ru.New()
	enUS := en_US.New()
	uni := ut.New(ruRU, ruRU, enUS)

	// 我们的语言标识 -> locale库的标识
	langMappings := map[string]string{
		LangRuRU: "ru",
		LangEnUS: "en_US",
	}

	for ourLang, localeLang := range langMappings {
		trans, found := uni.GetTranslator(localeLang)
		if !found {
			logger.Errorf("初始化翻译器失败 for language %s (locale: %s): translator not found", ourLang, localeLang)
			continue
		}
		i.translators[ourLang] = trans
	}

	logger.Debug("国际化翻译器初始化完成")
}

// Translate 根据键和语言获取翻译
// 当前语言缺失时回退到默认语言，仍缺失时返回键本身
func (i *I18n) Translate(key, lang string) string {
	if translation, found := translations[lang][key]; found {
		return translation
	}

	defaultLang := i.GetDefaultLanguage()
	if lang != defaultLang {
		if translation, found := translations[defaultLang][key]; found {
			return translation
		}
	}

	logger.Warnf("未找到翻译: %s, 语言: %s", key, lang)
	return key
}

// T 使用默认语言翻译
func (i *I18n) T(key string) string {
	return i.Translate(key, i.GetDefaultLanguage())
}

// SetDefaultLanguage 设置默认语言
// 不支持的语言会被忽略
func (i *I18n) SetDefaultLanguage(lang string) {
	if !i.IsSupportedLanguage(lang) {
		logger.Warnf("不支持的语言: %s", lang)
		return
	}
	i.mu.Lock()
	i.defaultLang = lang
	i.mu.Unlock()
	logger.Infof("设置默认语言为: %s", lang)
}

// GetDefaultLanguage 获取默认语言
func (i *I18n) GetDefaultLanguage() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.defaultLang
}

// IsSupportedLanguage 检查语言是否支持
func (i *I18n) IsSupportedLanguage(lang string) bool {
	_, exists := i.translators[lang]
	return exists
}

// GetSupportedLanguages 获取支持的语言列表
func (i *I18n) GetSupportedLanguages() []string {
	langs := make([]string, 0, len(i.translators))
	for lang := range i.translators {
		langs = append(langs, lang)
	}
	return langs
}
