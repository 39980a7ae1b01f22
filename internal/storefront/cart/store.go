package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// 永続キー。ブラウザ版のlocalStorageキーと同じ名前。
const StorageKey = "f1-cart"

// Storeはカートの読み書きだけを約束。
type Store interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStoreはカートをJSONファイル1枚で持つ。
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path() string {
	return filepath.Join(s.dir, StorageKey+".json")
}

// Loadはファイルが無い・壊れている場合は空のカートを返す。
func (s *FileStore) Load() ([]Item, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return []Item{}, nil
	}
	return items, nil
}

func (s *FileStore) Save(items []Item) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), data, 0o644)
}
