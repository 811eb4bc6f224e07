package stub

import (
	"context"
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/trading-league/internal/domain/referral"
)

type ReferralRepository struct {
	latency  Latency
	baseURL  string
	snapshot referral.Snapshot
}

func NewReferralRepository(snapshot referral.Snapshot, baseURL string, latency Latency) *ReferralRepository {
	return &ReferralRepository{
		latency:  latency,
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		snapshot: snapshot,
	}
}

func (r *ReferralRepository) Get(ctx context.Context) (referral.Snapshot, error) {
	if err := r.latency.wait(ctx, "get referral data", LatencyReferralData); err != nil {
		return referral.Snapshot{}, err
	}

	out := r.snapshot
	out.Recent = append([]referral.Record(nil), r.snapshot.Recent...)
	return out, nil
}

func (r *ReferralRepository) GenerateLink(ctx context.Context, kind referral.LinkKind) (referral.Link, error) {
	if err := r.latency.wait(ctx, "generate referral link", LatencyReferralLink); err != nil {
		return referral.Link{}, err
	}

	base, err := url.Parse(r.baseURL + "/join")
	if err != nil {
		return referral.Link{}, crerr.Wrapf(err, "parse referral base url %q", r.baseURL)
	}
	query := url.Values{}
	query.Set("ref", r.snapshot.Code)
	query.Set("type", string(kind))
	base.RawQuery = query.Encode()

	return referral.Link{Kind: kind, URL: base.String()}, nil
}
