package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalImageStoreはUPLOAD_DIR配下にそのまま書く。
type LocalImageStore struct {
	dir string
	now func() time.Time
}

func NewLocalImageStore(dir string) *LocalImageStore {
	return &LocalImageStore{dir: dir, now: time.Now}
}

// Saveはタイムスタンプを前置したファイル名で保存する（名前衝突の回避）。
func (s *LocalImageStore) Save(originalName string, body io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	// パス要素を落として素のファイル名だけ使う
	name := fmt.Sprintf("%d-%s", s.now().UnixMilli(), filepath.Base(originalName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return "", err
	}
	return name, nil
}
