package oxono

// Observer is told that the game changed and should be re-rendered. It may
// query the game but must not mutate it from inside OnChange.
type Observer interface {
	OnChange()
}

type subscription struct {
	id       int
	observer Observer
}

type observers struct {
	subs      []subscription
	nextID    int
	notifying bool
}

// Subscribe registers an observer and returns the function that removes it.
func (that *observers) Subscribe(observer Observer) (unsubscribe func()) {
	that.nextID++
	id := that.nextID
	that.subs = append(that.subs, subscription{id: id, observer: observer})

	return func() {
		kept := make([]subscription, 0, len(that.subs))
		for _, sub := range that.subs {
			if sub.id != id {
				kept = append(kept, sub)
			}
		}

		// notify may be ranging over the old slice
		that.subs = kept
	}
}

func (that *observers) notify() {
	that.notifying = true
	defer func() { that.notifying = false }()

	subs := that.subs
	for _, sub := range subs {
		sub.observer.OnChange()
	}
}
