package stub

import (
	"context"

	"github.com/riskibarqy/trading-league/internal/domain/share"
)

type ShareGateway struct {
	latency Latency
}

func NewShareGateway(latency Latency) *ShareGateway {
	return &ShareGateway{latency: latency}
}

// Share echoes the posted content back as the shared URL.
func (g *ShareGateway) Share(ctx context.Context, platform share.Platform, content string) (share.Result, error) {
	if err := g.latency.wait(ctx, "share to "+string(platform), LatencyShare); err != nil {
		return share.Result{}, err
	}

	return share.Result{
		Success:   true,
		Platform:  platform,
		SharedURL: content,
	}, nil
}
