package property

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект с таким id не сконфигурирован
	ErrPropertyNotFound = errors.New("property.repository: property not found")

	// ErrOpenFile возвращается при ошибке открытия CSV-файла
	ErrOpenFile = errors.New("property.repository: failed to open file")

	// ErrReadFile возвращается при ошибке чтения CSV-файла
	ErrReadFile = errors.New("property.repository: failed to read file")
)
