package obs

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// probeTimeout caps how long one readiness probe may take; a slow mongo
// ping must not wedge the readyz endpoint.
const probeTimeout = 2 * time.Second

// Health serves the liveness and readiness endpoints. Liveness is
// unconditional; readiness runs every registered probe in registration
// order and reports the first failure by name.
type Health struct {
	mu     sync.Mutex
	order  []string
	probes map[string]func(context.Context) error
}

func NewHealth() *Health {
	return &Health{probes: make(map[string]func(context.Context) error)}
}

// Check registers a named readiness probe, typically a storage ping.
func (h *Health) Check(name string, probe func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.probes[name]; !ok {
		h.order = append(h.order, name)
	}
	h.probes[name] = probe
}

func (h *Health) Livez(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "up"})
}

func (h *Health) Readyz(c *gin.Context) {
	h.mu.Lock()
	order := append([]string(nil), h.order...)
	probes := make(map[string]func(context.Context) error, len(h.probes))
	for name, probe := range h.probes {
		probes[name] = probe
	}
	h.mu.Unlock()

	for _, name := range order {
		ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
		err := probes[name](ctx)
		cancel()
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "not ready",
				"check":  name,
				"error":  err.Error(),
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
