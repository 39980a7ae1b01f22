package cart

import (
	"errors"
	"time"

	"github.com/jelllllllllll/F1s/internal/domain/model"

	"github.com/asaskevich/EventBus"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// カート件数表示などが購読するトピック。引数は数量の合計。
const TopicChanged = "cart:changed"

// 明示的な数量指定の上限。追加時のマージでは適用しない。
const maxQuantity = 10

var ErrQuantityLimit = errors.New("maximum quantity per item is 10")

// Itemはカートの1行。商品参照は外部向けCodeで、整合性は保証しない。
type Item struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	Quantity  int64     `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}

// 商品の逆引き（カタログ側が提供する）
type ProductLookup func(code string) (model.Product, bool)

// Managerはカートの唯一の持ち主。変更のたびにStoreへ永続化する。
type Manager struct {
	store  Store
	bus    EventBus.Bus
	lookup ProductLookup
	items  []Item

	newID func() string
	now   func() time.Time
}

// NewManagerは起動時に1回だけ読み込む。読めなければ空で始める。
func NewManager(store Store, bus EventBus.Bus, lookup ProductLookup) *Manager {
	items, err := store.Load()
	if err != nil {
		items = []Item{}
	}
	return &Manager{
		store:  store,
		bus:    bus,
		lookup: lookup,
		items:  items,
		newID:  uuid.NewString,
		now:    time.Now,
	}
}

// Addは商品をカートへ。既にある商品は数量を加算する。
// 存在しない商品IDは何もしない。
func (m *Manager) Add(productID string, quantity int64) error {
	if quantity < 1 {
		quantity = 1
	}
	if _, ok := m.lookup(productID); !ok {
		return nil
	}

	merged := false
	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		m.items = append(m.items, Item{
			ID:        m.newID(),
			ProductID: productID,
			Quantity:  quantity,
			AddedAt:   m.now(),
		})
	}

	return m.persist()
}

// SetQuantityは数量の置き換え。1未満は行ごと削除、10超は拒否して変更なし。
func (m *Manager) SetQuantity(itemID string, quantity int64) error {
	idx := m.indexOf(itemID)
	if idx < 0 {
		return nil
	}
	if quantity < 1 {
		return m.Remove(itemID)
	}
	if quantity > maxQuantity {
		return ErrQuantityLimit
	}

	m.items[idx].Quantity = quantity
	return m.persist()
}

// Removeは行を消す。無ければ何もしない。
func (m *Manager) Remove(itemID string) error {
	idx := m.indexOf(itemID)
	if idx < 0 {
		return nil
	}
	m.items = append(m.items[:idx], m.items[idx+1:]...)
	return m.persist()
}

// Clearは注文成立後のカート全消し。空の状態も永続化する。
func (m *Manager) Clear() error {
	m.items = []Item{}
	return m.persist()
}

// Itemsは表示用のコピーを返す。
func (m *Manager) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// Countは数量の合計（カートバッジ用）。
func (m *Manager) Count() int64 {
	var n int64
	for _, it := range m.items {
		n += it.Quantity
	}
	return n
}

// Totalは単価×数量の合計。商品が見つからない行は0円扱い。
func (m *Manager) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range m.items {
		p, ok := m.lookup(it.ProductID)
		if !ok {
			continue
		}
		total = total.Add(p.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

func (m *Manager) indexOf(itemID string) int {
	for i := range m.items {
		if m.items[i].ID == itemID {
			return i
		}
	}
	return -1
}

func (m *Manager) persist() error {
	if err := m.store.Save(m.items); err != nil {
		return err
	}
	if m.bus != nil {
		m.bus.Publish(TopicChanged, m.Count())
	}
	return nil
}
