package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/insania/files/internal/i18n"
)

func TestNewUsesDefaultLanguage(t *testing.T) {
	assert.Equal(t, "Файл удалён в зоне файлов", New(ErrDeletedFile).Error())
	assert.Equal(t, "Тип файла удалён в зоне файлов", New(ErrDeletedFileType).Error())
	assert.Equal(t, "Некорректный тип контента в зоне файлов", New(ErrIncorrectContentType).Error())
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("store: %w", New(ErrNotFoundFile))

	assert.ErrorIs(t, err, ErrNotFoundFileError)
	assert.NotErrorIs(t, err, ErrDeletedFileError)
	assert.True(t, HasCode(err, ErrNotFoundFile))
	assert.False(t, HasCode(stderrors.New("plain"), ErrNotFoundFile))
}

func TestWrapKeepsOriginal(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(ErrGeneric, cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Ошибка в зоне файлов: connection refused", err.Error())

	appErr, ok := GetAppError(err)
	assert.True(t, ok)
	assert.Equal(t, ErrGeneric, appErr.Code)
}

func TestWithDetailsReturnsCopy(t *testing.T) {
	base := New(ErrNotFoundFileType)
	detailed := base.WithDetails("3")

	assert.Equal(t, "Не найден тип файла в зоне файлов: 3", detailed.Error())
	assert.Empty(t, base.Details)
	assert.ErrorIs(t, detailed, ErrNotFoundFileTypeError)
}

func TestMessageLanguages(t *testing.T) {
	assert.Equal(t, "File is deleted", GetErrorMessageWithLang(ErrDeletedFile, i18n.LangEnUS))
	assert.Equal(t, "Неизвестная ошибка", GetErrorMessageWithLang(ErrorCode(9999), i18n.LangRuRU))
}
