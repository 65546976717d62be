package services

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"pauta_voting_system/internal/db/models"
	"pauta_voting_system/internal/db/repositories"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// EligibilityGate decides whether a user may cast a counted vote.
type EligibilityGate interface {
	Check(ctx context.Context, userID int64) (bool, error)
}

// RandomGate lets a user through with a fixed probability.
type RandomGate struct {
	mu              sync.Mutex
	rnd             *rand.Rand
	passProbability float64
}

// NewRandomGate seeds from the clock when seed is 0.
func NewRandomGate(passProbability float64, seed int64) *RandomGate {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &RandomGate{
		rnd:             rand.New(rand.NewSource(seed)),
		passProbability: passProbability,
	}
}

func (g *RandomGate) Check(_ context.Context, _ int64) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.rnd.Float64() < g.passProbability, nil
}

type cpfStatus struct {
	Status string `json:"status"`
}

// HTTPGate asks an external service about the user's CPF:
// GET {baseURL}/users/{cpf} -> {"status": "ABLE_TO_VOTE" | "UNABLE_TO_VOTE"}.
type HTTPGate struct {
	client         *http.Client
	baseURL        string
	userRepository repositories.UserRepository
}

func NewHTTPGate(baseURL string, timeout time.Duration, userRepository repositories.UserRepository) *HTTPGate {
	return &HTTPGate{
		client:         &http.Client{Timeout: timeout},
		baseURL:        baseURL,
		userRepository: userRepository,
	}
}

func (g *HTTPGate) Check(ctx context.Context, userID int64) (bool, error) {
	user, err := g.userRepository.GetOne(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("get user %d: %w", userID, err)
	}
	if user == nil {
		return false, nil
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/users/%s", g.baseURL, url.PathEscape(user.CPF)), nil)
	if err != nil {
		return false, err
	}
	request.Header.Add("Accept", "application/json")

	response, err := g.client.Do(request)
	if err != nil {
		return false, err
	}
	defer response.Body.Close()

	if response.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if response.StatusCode != http.StatusOK {
		return false, fmt.Errorf("eligibility service responded with %d", response.StatusCode)
	}

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return false, err
	}

	status := new(cpfStatus)
	if err := json.Unmarshal(responseBody, status); err != nil {
		return false, fmt.Errorf("decode eligibility response: %w", err)
	}

	return status.Status == models.VoteStatusAbleToVote.String(), nil
}
