package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"chapati/internal/domain/model"
	repo "chapati/internal/repository"
)

// FileOrderStore は注文一覧をJSONファイル1枚に丸ごと保存する。
// mutexでread-modify-writeを直列化するので、同時送信で注文が消えることはない
type FileOrderStore struct {
	path string
	mu   sync.Mutex
}

func NewFileOrderStore(path string) *FileOrderStore {
	return &FileOrderStore{path: path}
}

var _ repo.OrderStore = (*FileOrderStore)(nil)

func (s *FileOrderStore) Load(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *FileOrderStore) Save(ctx context.Context, orders []model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(orders)
}

func (s *FileOrderStore) Prune(ctx context.Context, now time.Time) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.load()
	if err != nil {
		return nil, err
	}

	kept := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		if o.Active(now) {
			kept = append(kept, o)
		}
	}

	if err := s.save(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

func (s *FileOrderStore) load() ([]model.Order, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		//ファイル未作成は空扱い（エラーではない）
		return []model.Order{}, nil
	}
	if err != nil {
		return nil, err
	}

	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		//壊れたファイルは自動修復しない
		return nil, fmt.Errorf("%w: %s: %v", repo.ErrCorrupted, s.path, err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (s *FileOrderStore) save(orders []model.Order) error {
	if orders == nil {
		orders = []model.Order{}
	}

	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return err
	}

	//一時ファイルに書いてからrenameで置き換える（書きかけを残さない）
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".orders-*.json")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
