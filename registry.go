package ashlog

import (
	"github.com/Borislavv/go-ash-log/internal/handler"
	"github.com/Borislavv/go-ash-log/model"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"slices"
	"sync"
)

// DefaultRegistry is the process-wide registry used by New.
// It lives until the process exits.
var DefaultRegistry = NewRegistry(nil)

// channel is the set of sinks shared by every facade of one environment.
type channel struct {
	name string
	set  *handler.Set
	zap  *zap.Logger
}

// Registry maps channel names to their sinks. A channel is populated once;
// later facades of the same environment reuse it instead of attaching
// a second set of sinks.
type Registry struct {
	mu         sync.Mutex
	channels   map[string]*channel
	registerer prometheus.Registerer
}

// NewRegistry creates an empty registry. When reg is not nil the sink
// counters of every attached channel are exported to it.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return &Registry{
		channels:   make(map[string]*channel),
		registerer: reg,
	}
}

// ChannelName is the logger identity of env, e.g. "app.test".
func ChannelName(env model.Env) string {
	return "app." + env.String()
}

// attach returns the channel called name, populating it with set when absent.
// attached is false when the channel already existed: set is then left untouched.
func (r *Registry) attach(name string, set *handler.Set) (ch *channel, attached bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ch, ok := r.channels[name]; ok {
		return ch, false, nil
	}

	if err = set.Register(r.registerer, name); err != nil {
		return nil, false, err
	}

	ch = &channel{
		name: name,
		set:  set,
		zap:  zap.New(set.Core()).Named(name),
	}
	r.channels[name] = ch

	return ch, true, nil
}

// Channels returns the names of populated channels, sorted.
func (r *Registry) Channels() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.channels))
	for name := range r.channels {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Close closes the sinks of every channel and empties the registry.
// Facades created before Close fail to write afterwards.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var err error
	for name, ch := range r.channels {
		err = multierr.Append(err, ch.set.Close())
		delete(r.channels, name)
	}
	return err
}
