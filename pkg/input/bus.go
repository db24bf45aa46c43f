package input

// Listener 事件监听函数
type Listener func(Event)

// Subscription 一次订阅，可通过 Cancel 取消
type Subscription struct {
	bus      *Bus
	listener Listener
	canceled bool
}

// Cancel 取消订阅（可重复调用）
func (s *Subscription) Cancel() {
	if s == nil || s.canceled {
		return
	}
	s.canceled = true
	s.bus.remove(s)
}

// Bus 文档级事件总线
//
// 所有事件在调用 Dispatch 的 goroutine 中同步投递，按订阅顺序依次调用。
// 总线本身不做任何过滤：事件是否属于某个控件由订阅者自己判断。
// 与 Ebitengine 的 Update 循环一样，Bus 只在单个 goroutine 中使用，不加锁。
type Bus struct {
	subs []*Subscription
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe 注册监听器
func (b *Bus) Subscribe(l Listener) *Subscription {
	sub := &Subscription{bus: b, listener: l}
	b.subs = append(b.subs, sub)
	return sub
}

// Dispatch 将事件投递给所有订阅者
//
// 投递期间新增的订阅者不会收到本次事件；投递期间被取消的订阅者不再收到本次事件。
func (b *Bus) Dispatch(e Event) {
	snapshot := make([]*Subscription, len(b.subs))
	copy(snapshot, b.subs)

	for _, sub := range snapshot {
		if sub.canceled {
			continue
		}
		sub.listener(e)
	}
}

// Len 当前订阅者数量
func (b *Bus) Len() int {
	return len(b.subs)
}

func (b *Bus) remove(target *Subscription) {
	for i, sub := range b.subs {
		if sub == target {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}
