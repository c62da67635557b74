package distribution

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/iohmm/rng"
)

// NormalDistribution is a 1-D Gaussian with invariant Sigma > 0 (spec
// §4.4). PDF delegates to gonum's distuv.Normal, whose Prob implements
// the same (1/(sigma*sqrt(2*pi)))*exp(-(x-mu)^2/(2*sigma^2)) formula the
// spec pins; Sample and Fit are hand-rolled because their exact formulas
// are part of the spec's contract (see DESIGN.md).
type NormalDistribution struct {
	mu    float64
	sigma float64
}

// NewNormalDistribution builds a Normal(mu, sigma). It returns
// ErrInvalidInput if sigma <= 0.
func NewNormalDistribution(mu, sigma float64) (*NormalDistribution, error) {
	if sigma <= 0 {
		return nil, ErrInvalidInput
	}
	return &NormalDistribution{mu: mu, sigma: sigma}, nil
}

// Mu returns the mean.
func (nd *NormalDistribution) Mu() float64 { return nd.mu }

// Sigma returns the standard deviation.
func (nd *NormalDistribution) Sigma() float64 { return nd.sigma }

// SetSigma updates sigma, rejecting non-positive values with
// ErrInvalidInput.
func (nd *NormalDistribution) SetSigma(sigma float64) error {
	if sigma <= 0 {
		return ErrInvalidInput
	}
	nd.sigma = sigma
	return nil
}

func (nd *NormalDistribution) asDistuv() distuv.Normal {
	return distuv.Normal{Mu: nd.mu, Sigma: nd.sigma}
}

// PDF returns the Gaussian density at x. NormalDistribution has no
// excluded domain, so this never returns ErrOutOfDomain.
func (nd *NormalDistribution) PDF(x float64) (float64, error) {
	return nd.asDistuv().Prob(x), nil
}

// Sample draws via Box-Muller: mu + sigma*sqrt(-2*ln(u1))*sin(2*pi*u2),
// consuming two draws from r (spec §4.4), plus one more each time u1 comes
// out exactly 0.
func (nd *NormalDistribution) Sample(r rng.RNG) (float64, error) {
	r = rng.OrDefault(r)
	u1 := r.NextUnit()
	for u1 == 0 {
		u1 = r.NextUnit()
	}
	u2 := r.NextUnit()
	return nd.mu + nd.sigma*math.Sqrt(-2*math.Log(u1))*math.Sin(2*math.Pi*u2), nil
}

// Fit performs the two-pass weighted-moment update of spec §4.4: mu_new =
// sum(w*x), sigma2_new = sum(w*(x^2 - mu_new^2)), then blends both mu and
// sigma linearly by eta — including the documented linear-sigma blend
// (spec §9 Open Question, kept as specified; see DESIGN.md).
func (nd *NormalDistribution) Fit(weighted []WeightedObservation[float64], eta float64) error {
	if !validEta(eta) {
		return ErrInvalidInput
	}
	if len(weighted) == 0 {
		return nil
	}
	muNew := 0.0
	for _, wo := range weighted {
		muNew += wo.Weight * wo.Value
	}
	sigma2New := 0.0
	for _, wo := range weighted {
		sigma2New += wo.Weight * (wo.Value*wo.Value - muNew*muNew)
	}
	if sigma2New < 0 {
		sigma2New = 0
	}
	sigmaNew := math.Sqrt(sigma2New)

	nd.mu = eta*muNew + (1-eta)*nd.mu
	nd.sigma = eta*sigmaNew + (1-eta)*nd.sigma
	if nd.sigma <= 0 {
		nd.sigma = 1e-9 // guard the invariant sigma > 0 against degenerate blends
	}
	return nil
}

// FitUnnormalized renormalizes weighted and delegates to Fit.
func (nd *NormalDistribution) FitUnnormalized(weighted []WeightedObservation[float64], eta float64) error {
	normalized, err := normalize(weighted)
	if err != nil {
		return err
	}
	if normalized == nil {
		return nil
	}
	return nd.Fit(normalized, eta)
}

// Reset sets (mu, sigma) back to (0, 1).
func (nd *NormalDistribution) Reset() {
	nd.mu = 0
	nd.sigma = 1
}

// Randomize perturbs mu and sigma strongly while keeping sigma > 0.
func (nd *NormalDistribution) Randomize(r rng.RNG) error {
	r = rng.OrDefault(r)
	nd.mu = (r.NextUnit()*2 - 1) * 10
	nd.sigma = r.NextUnit()*9 + 0.1
	return nil
}
