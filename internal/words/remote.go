// internal/words/remote.go
//
// Source backed by a plain-text word list fetched over HTTP.
// The list is downloaded once per length and serves as both the answer
// list and the allowed set.

package words

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/robalobadob/wordle/apps/go-term/assets"
)

// DefaultURLs maps word lengths to well-known public lists.
var DefaultURLs = map[int]string{
	5: "https://raw.githubusercontent.com/charlesreid1/five-letter-words/master/sgb-words.txt",
}

const defaultFetchTimeout = 15 * time.Second

// Remote fetches word lists over HTTP.
type Remote struct {
	// URL overrides DefaultURLs for every length when set.
	URL    string
	Client *http.Client

	mu    sync.Mutex
	cache map[int][]string
}

// NewRemote returns a Remote source. An empty url uses DefaultURLs.
func NewRemote(url string) *Remote {
	return &Remote{URL: url, Client: &http.Client{Timeout: defaultFetchTimeout}}
}

func (r *Remote) Answers(ctx context.Context, length int) ([]string, error) {
	return r.fetch(ctx, length)
}

func (r *Remote) Allowed(ctx context.Context, length int) (Set, error) {
	list, err := r.fetch(ctx, length)
	if err != nil {
		return nil, err
	}
	return toSet(list), nil
}

func (r *Remote) urlFor(length int) (string, error) {
	if r.URL != "" {
		return r.URL, nil
	}
	if u, ok := DefaultURLs[length]; ok {
		return u, nil
	}
	return "", fmt.Errorf("%w: no word list url for length %d", ErrNoWords, length)
}

func (r *Remote) fetch(ctx context.Context, length int) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if list, ok := r.cache[length]; ok {
		return list, nil
	}

	url, err := r.urlFor(length)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("words: build request: %w", err)
	}
	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("words: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("words: fetch %s: unexpected status %s", url, resp.Status)
	}

	raw, err := assets.ReadLines(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", url, err)
	}
	list := normalize(raw, length)
	if r.cache == nil {
		r.cache = make(map[int][]string)
	}
	r.cache[length] = list
	return list, nil
}
