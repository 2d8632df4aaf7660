package teams

import (
	"math/rand"
	"sync"
)

// Teams is the fixed promotional set assigned at registration.
var Teams = []string{"RCB", "MI", "CSK", "KKR", "SRH", "DC", "RR", "PBKS"}

// Picker draws a team from an injected random source.
type Picker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewPicker(src rand.Source) *Picker {
	return &Picker{rnd: rand.New(src)}
}

func (p *Picker) Pick() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Teams[p.rnd.Intn(len(Teams))]
}

func IsValid(team string) bool {
	for _, t := range Teams {
		if t == team {
			return true
		}
	}
	return false
}
