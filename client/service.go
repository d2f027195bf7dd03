package client

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"github.com/studykorea/uniclient/envelope"
	"github.com/studykorea/uniclient/model"
	"github.com/studykorea/uniclient/normalize"
	"github.com/studykorea/uniclient/sample"
)

// Operation kinds used for stale-response sequencing. A response only
// writes the cache if its sequence number is still the newest issued for
// its kind, so a slow superseded fetch can never clobber fresher state.
const (
	kindList       = "list"
	kindSearch     = "search"
	kindByLocation = "by-location"
	kindByType     = "by-type"
	kindLocations  = "locations"
	kindTypes      = "types"
)

// imageEnrichTimeout bounds the background images fetch; it carries its own
// context because the caller's request is already answered by then.
const imageEnrichTimeout = 10 * time.Second

// ListUniversities returns one page of the catalog, filtered by the
// optional search/location/type arguments. It never fails from the
// caller's perspective: any transport, backend or payload problem falls
// back to the embedded sample set, filtered client-side, so the UI always
// has content to render. The default request shape (no filters, first
// page, canonical size) is answered from cache when populated and is the
// only shape whose result is cached wholesale.
func (c *Client) ListUniversities(ctx context.Context, page, size int, search, location, uniType string) model.PagedUniversities {
	if size <= 0 {
		size = c.pageSize
	}
	search = strings.TrimSpace(search)
	isDefault := page == 0 && size == c.pageSize && search == "" && location == "" && uniType == ""

	if isDefault {
		if list, ok := c.store.Default(); ok {
			return pageOf(list, 0, c.pageSize)
		}
		if c.redis != nil {
			if list, err := c.redis.GetDefaultList(ctx); err == nil {
				c.store.Put(list)
				return pageOf(list, 0, c.pageSize)
			}
		}
	}

	key := fmt.Sprintf("list:%d:%d:%s:%s:%s", page, size, search, location, uniType)
	result, err, _ := c.group.Do(key, func() (any, error) {
		seq := c.nextSeq(kindList)

		query := url.Values{}
		query.Set("page", fmt.Sprint(page))
		query.Set("size", fmt.Sprint(size))
		if search != "" {
			query.Set("search", search)
		}
		if location != "" {
			query.Set("location", location)
		}
		if uniType != "" {
			query.Set("type", uniType)
		}

		body, err := c.getBody(ctx, "/universities?"+query.Encode())
		if err != nil {
			return nil, err
		}
		payload, err := envelope.Parse(body)
		if err != nil {
			return nil, err
		}
		list, err := normalize.UniversitySlice(payload.Items)
		if err != nil {
			return nil, err
		}

		paged := model.PagedUniversities{
			Content:       list,
			Page:          payload.Page,
			Size:          payload.Size,
			TotalElements: payload.TotalElements,
			TotalPages:    payload.TotalPages,
		}
		if !payload.Paged {
			paged = pageOf(list, page, size)
		}

		if isDefault && c.isLatest(kindList, seq) {
			c.store.Put(list)
			c.mirrorDefaultList(list)
		}
		return paged, nil
	})
	if err != nil {
		c.logger.Printf("[Client] List fetch failed, serving sample data: %v", err)
		return pageOf(sample.Filter(search, location, uniType), page, size)
	}
	return result.(model.PagedUniversities)
}

// GetUniversityByID is cache-first: memory, then the Redis tier, then the
// network. A record fetched without images gets a best-effort background
// enrichment from the images endpoint. This is one of the two operations
// that surface typed errors; when the backend is unreachable the sample
// set is consulted before giving up.
func (c *Client) GetUniversityByID(ctx context.Context, id int) (model.University, error) {
	if u, ok := c.store.Get(id); ok {
		return u, nil
	}
	if c.redis != nil {
		if u, err := c.redis.GetUniversity(ctx, id); err == nil {
			c.store.Upsert(u)
			return u, nil
		}
	}

	key := fmt.Sprintf("detail:%d", id)
	result, err, _ := c.group.Do(key, func() (any, error) {
		body, err := c.getBody(ctx, fmt.Sprintf("/universities/%d", id))
		if err != nil {
			return nil, err
		}
		raw, err := envelope.ParseObject(body)
		if err != nil {
			return nil, err
		}
		u, err := normalize.University(raw)
		if err != nil {
			return nil, err
		}

		c.store.Upsert(u)
		c.mirrorUniversity(u)
		if len(u.Images) == 0 {
			go c.enrichImages(id)
		}
		return u, nil
	})
	if err != nil {
		if HasCategory(err, CategoryUnreachable) {
			if u, ok := sample.Find(id); ok {
				c.logger.Printf("[Client] Backend unreachable, serving sample record for university %d", id)
				return u, nil
			}
		}
		return model.University{}, err
	}
	return result.(model.University), nil
}

// enrichImages fetches the secondary images endpoint and merges any new
// URLs into the cached record. Best effort: the primary result was already
// returned, so failures are only logged.
func (c *Client) enrichImages(id int) {
	ctx, cancel := context.WithTimeout(context.Background(), imageEnrichTimeout)
	defer cancel()

	body, err := c.getBody(ctx, fmt.Sprintf("/universities/%d/images", id))
	if err != nil {
		c.logger.Printf("[Client] Image enrichment for university %d failed: %v", id, err)
		return
	}

	urls, err := envelope.ParseStrings(body)
	if err != nil {
		// Some backends ship image objects instead of URL strings.
		payload, perr := envelope.Parse(body)
		if perr != nil {
			c.logger.Printf("[Client] Image enrichment for university %d: unusable payload: %v", id, err)
			return
		}
		urls = imageURLs(payload.Items)
	}
	if len(urls) == 0 {
		return
	}

	u, ok := c.store.Get(id)
	if !ok {
		return
	}
	seen := map[string]bool{}
	for _, existing := range u.Images {
		seen[existing] = true
	}
	for _, candidate := range urls {
		if candidate = strings.TrimSpace(candidate); candidate != "" && !seen[candidate] {
			seen[candidate] = true
			u.Images = append(u.Images, candidate)
		}
	}
	if len(u.Images) > 0 && u.ImageURL == "" {
		u.ImageURL = u.Images[0]
	}
	c.store.Upsert(u)
	c.mirrorUniversity(u)
}

// imageURLs extracts URL strings from raw image objects.
func imageURLs(items []map[string]any) []string {
	out := []string{}
	for _, raw := range items {
		if raw == nil {
			continue
		}
		for _, k := range []string{"imageUrl", "image_url", "url", "path"} {
			if s, ok := raw[k].(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
				break
			}
		}
	}
	return out
}

// GetReviewsByUniversityID always succeeds from the caller's perspective:
// any failure degrades to the seed reviews for that university, which may
// legitimately be empty.
func (c *Client) GetReviewsByUniversityID(ctx context.Context, id int) []model.Review {
	body, err := c.getBody(ctx, fmt.Sprintf("/reviews/university/%d", id))
	if err != nil {
		c.logger.Printf("[Client] Reviews fetch for university %d failed, serving sample reviews: %v", id, err)
		return sample.ReviewsFor(id)
	}
	payload, err := envelope.Parse(body)
	if err != nil {
		c.logger.Printf("[Client] Reviews payload for university %d unusable, serving sample reviews: %v", id, err)
		return sample.ReviewsFor(id)
	}
	return normalize.ReviewSlice(payload.Items)
}

// GetAllReviews returns every review the backend knows about, degrading to
// the seed reviews on failure.
func (c *Client) GetAllReviews(ctx context.Context) []model.Review {
	body, err := c.getBody(ctx, "/reviews")
	if err != nil {
		c.logger.Printf("[Client] All-reviews fetch failed, serving sample reviews: %v", err)
		return sample.Reviews()
	}
	payload, err := envelope.Parse(body)
	if err != nil {
		c.logger.Printf("[Client] All-reviews payload unusable, serving sample reviews: %v", err)
		return sample.Reviews()
	}
	return normalize.ReviewSlice(payload.Items)
}

// AddReview validates and posts a review, returning the stored review with
// its server-assigned id, then recomputes the university's rating
// aggregates from a fresh review fetch. This is the one write path that
// must surface failure: silently dropping a submitted review would mislead
// the user.
func (c *Client) AddReview(ctx context.Context, review model.Review) (model.Review, error) {
	if err := c.validate.ValidateStruct(review); err != nil {
		return model.Review{}, fmt.Errorf("invalid review: %w", err)
	}

	body, err := c.postJSON(ctx, "/reviews", review)
	if err != nil {
		return model.Review{}, err
	}
	raw, err := envelope.ParseObject(body)
	if err != nil {
		return model.Review{}, err
	}
	stored := normalize.Review(raw)

	c.updateAverageRating(ctx, review.UniversityID)
	return stored, nil
}

// updateAverageRating refreshes the cached university's aggregates as the
// arithmetic mean of all current ratings, rounded to one decimal place.
func (c *Client) updateAverageRating(ctx context.Context, universityID int) {
	reviews := c.GetReviewsByUniversityID(ctx, universityID)
	if len(reviews) == 0 {
		return
	}
	total := 0.0
	for _, r := range reviews {
		total += r.Rating
	}
	average := math.Round(total/float64(len(reviews))*10) / 10

	u, ok := c.store.Get(universityID)
	if !ok {
		return
	}
	u.AverageRating = average
	u.ReviewCount = len(reviews)
	c.store.Upsert(u)
	c.mirrorUniversity(u)
}

// SubmitUniversityRequest records a new-university request locally and
// acknowledges it. The backend has no endpoint for these yet, so this is a
// stub boundary: swap the local append for a POST when one exists and the
// rest of the contract holds.
func (c *Client) SubmitUniversityRequest(ctx context.Context, request model.UniversityRequest) (model.UniversityRequest, error) {
	if err := c.validate.ValidateStruct(request); err != nil {
		return model.UniversityRequest{}, fmt.Errorf("invalid university request: %w", err)
	}

	c.mu.Lock()
	request.ID = c.nextRequestID
	c.nextRequestID++
	request.Status = model.RequestPending
	request.SubmittedDate = time.Now()
	c.requests = append(c.requests, request)
	c.mu.Unlock()

	c.logger.Printf("[Client] Recorded university request %d (%s)", request.ID, request.Name)
	return request, nil
}

// GetUniversityRequests returns the requests recorded in this process.
func (c *Client) GetUniversityRequests() []model.UniversityRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.UniversityRequest(nil), c.requests...)
}

// SearchUniversities runs a free-text search, cached per query, degrading
// to a client-side filter over the sample set.
func (c *Client) SearchUniversities(ctx context.Context, query string) []model.University {
	query = strings.TrimSpace(query)
	if list, ok := c.store.Search(query); ok {
		return list
	}
	return c.fetchFiltered(ctx, kindSearch,
		"/universities/search?q="+url.QueryEscape(query),
		func(list []model.University) { c.store.SetSearch(query, list) },
		func() []model.University { return sample.Filter(query, "", "") })
}

// GetUniversitiesByLocation filters by location, cached per location,
// degrading to the sample set.
func (c *Client) GetUniversitiesByLocation(ctx context.Context, location string) []model.University {
	if list, ok := c.store.ByLocation(location); ok {
		return list
	}
	return c.fetchFiltered(ctx, kindByLocation,
		"/universities/by-location?location="+url.QueryEscape(location),
		func(list []model.University) { c.store.SetByLocation(location, list) },
		func() []model.University { return sample.Filter("", location, "") })
}

// GetUniversitiesByType filters by university type, cached per type,
// degrading to the sample set.
func (c *Client) GetUniversitiesByType(ctx context.Context, uniType string) []model.University {
	if list, ok := c.store.ByType(uniType); ok {
		return list
	}
	return c.fetchFiltered(ctx, kindByType,
		"/universities/by-type?type="+url.QueryEscape(uniType),
		func(list []model.University) { c.store.SetByType(uniType, list) },
		func() []model.University { return sample.Filter("", "", uniType) })
}

// fetchFiltered is the shared fetch → normalize → stale-guarded cache-store
// → sample-fallback pipeline behind the search and filter reads.
func (c *Client) fetchFiltered(ctx context.Context, kind, endpoint string, store func([]model.University), fallback func() []model.University) []model.University {
	result, err, _ := c.group.Do(kind+":"+endpoint, func() (any, error) {
		seq := c.nextSeq(kind)

		body, err := c.getBody(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		payload, err := envelope.Parse(body)
		if err != nil {
			return nil, err
		}
		list, err := normalize.UniversitySlice(payload.Items)
		if err != nil {
			return nil, err
		}

		if c.isLatest(kind, seq) {
			store(list)
		}
		return list, nil
	})
	if err != nil {
		c.logger.Printf("[Client] %s fetch failed, serving sample data: %v", kind, err)
		return fallback()
	}
	return result.([]model.University)
}

// GetLocations returns the distinct locations, cached, falling back to the
// sample set's locations.
func (c *Client) GetLocations(ctx context.Context) []string {
	if list, ok := c.store.Locations(); ok {
		return list
	}
	return c.fetchStrings(ctx, kindLocations, "/universities/locations",
		c.store.SetLocations, sample.Locations)
}

// GetTypes returns the distinct university types, cached, falling back to
// the sample set's types.
func (c *Client) GetTypes(ctx context.Context) []string {
	if list, ok := c.store.Types(); ok {
		return list
	}
	return c.fetchStrings(ctx, kindTypes, "/universities/types",
		c.store.SetTypes, sample.Types)
}

func (c *Client) fetchStrings(ctx context.Context, kind, endpoint string, store func([]string), fallback func() []string) []string {
	result, err, _ := c.group.Do(kind, func() (any, error) {
		seq := c.nextSeq(kind)

		body, err := c.getBody(ctx, endpoint)
		if err != nil {
			return nil, err
		}
		list, err := envelope.ParseStrings(body)
		if err != nil {
			return nil, err
		}

		if c.isLatest(kind, seq) {
			store(list)
		}
		return list, nil
	})
	if err != nil {
		c.logger.Printf("[Client] %s fetch failed, serving sample data: %v", kind, err)
		return fallback()
	}
	return result.([]string)
}

// GetTopRatedUniversities returns up to limit universities ordered by
// rating, degrading to the sample set sorted client-side.
func (c *Client) GetTopRatedUniversities(ctx context.Context, limit int) []model.University {
	if limit <= 0 {
		limit = 3
	}
	result, err, _ := c.group.Do(fmt.Sprintf("top:%d", limit), func() (any, error) {
		body, err := c.getBody(ctx, fmt.Sprintf("/universities/top?limit=%d", limit))
		if err != nil {
			return nil, err
		}
		payload, err := envelope.Parse(body)
		if err != nil {
			return nil, err
		}
		return normalize.UniversitySlice(payload.Items)
	})
	if err != nil {
		c.logger.Printf("[Client] Top-rated fetch failed, serving sample data: %v", err)
		return sample.TopRated(limit)
	}
	return result.([]model.University)
}

// ClearCache drops every cache bucket (and flushes the Redis tier when one
// is attached). Call it before any retry-after-error flow so the next read
// is guaranteed a fresh fetch.
func (c *Client) ClearCache() {
	c.store.InvalidateAll()
	if c.redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.redis.FlushAll(ctx); err != nil {
			c.logger.Printf("[Client] Redis flush failed: %v", err)
		}
	}
}

// nextSeq issues the next sequence number for an operation kind.
func (c *Client) nextSeq(kind string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued[kind]++
	return c.issued[kind]
}

// isLatest reports whether seq is still the newest issued for its kind.
func (c *Client) isLatest(kind string, seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issued[kind] == seq
}

// mirrorUniversity writes a record through to the Redis tier, best effort.
func (c *Client) mirrorUniversity(u model.University) {
	if c.redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.redis.SetUniversity(ctx, u); err != nil {
		c.logger.Printf("[Client] Redis mirror for university %d failed: %v", u.ID, err)
	}
}

// mirrorDefaultList writes the default list through to the Redis tier.
func (c *Client) mirrorDefaultList(list []model.University) {
	if c.redis == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.redis.SetDefaultList(ctx, list); err != nil {
		c.logger.Printf("[Client] Redis mirror for default list failed: %v", err)
	}
}

// pageOf wraps an already-complete list in page metadata.
func pageOf(list []model.University, page, size int) model.PagedUniversities {
	totalPages := 0
	if size > 0 && len(list) > 0 {
		totalPages = (len(list) + size - 1) / size
	}
	return model.PagedUniversities{
		Content:       list,
		Page:          page,
		Size:          size,
		TotalElements: len(list),
		TotalPages:    totalPages,
	}
}
