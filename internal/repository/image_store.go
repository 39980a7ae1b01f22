package repository

import "io"

// アップロード画像の保存だけを約束。戻り値は保存後のファイル名。
type ImageStore interface {
	Save(originalName string, body io.Reader) (string, error)
}
