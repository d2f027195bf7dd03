// mockapi is a local stand-in for the university backend. It serves the
// embedded sample dataset over the real wire contract (envelope, page
// object, review submission with id assignment) so the client and the CLI
// can be exercised with no infrastructure.
package main

import (
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/studykorea/uniclient/config"
	"github.com/studykorea/uniclient/model"
	"github.com/studykorea/uniclient/response"
	"github.com/studykorea/uniclient/sample"
)

type server struct {
	mu           sync.Mutex
	universities []model.University
	reviews      []model.Review
	nextReviewID int
}

func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	env, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	s := &server{
		universities: sample.Universities(),
		reviews:      sample.Reviews(),
	}
	s.nextReviewID = len(s.reviews) + 1

	app := fiber.New()
	api := app.Group("/api")

	api.Get("/universities/top", s.topRated)
	api.Get("/universities/search", s.search)
	api.Get("/universities/by-location", s.byLocation)
	api.Get("/universities/by-type", s.byType)
	api.Get("/universities/locations", s.locations)
	api.Get("/universities/types", s.types)
	api.Get("/universities/:id/images", s.images)
	api.Get("/universities/:id", s.detail)
	api.Get("/universities", s.list)

	api.Get("/reviews/university/:id", s.reviewsByUniversity)
	api.Get("/reviews", s.allReviews)
	api.Post("/reviews", s.addReview)

	log.Printf("mockapi listening on :%d", env.MOCK_API_PORT)
	if err := app.Listen(fmt.Sprintf(":%d", env.MOCK_API_PORT)); err != nil {
		log.Fatal(err)
	}
}

func (s *server) list(c *fiber.Ctx) error {
	page := c.QueryInt("page", 0)
	size := c.QueryInt("size", 10)
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	filtered := s.filter(c.Query("search"), c.Query("location"), c.Query("type"))
	total := len(filtered)

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}
	return response.Paginated(c, filtered[start:end], page, size, total)
}

func (s *server) detail(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "invalid university id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.universities {
		if u.ID == id {
			return response.Success(c, u)
		}
	}
	return response.NotFound(c, "university not found")
}

func (s *server) images(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "invalid university id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.universities {
		if u.ID == id {
			return response.Success(c, u.Images)
		}
	}
	return response.NotFound(c, "university not found")
}

func (s *server) topRated(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 3)
	s.mu.Lock()
	out := append([]model.University(nil), s.universities...)
	s.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return response.Success(c, out)
}

func (s *server) search(c *fiber.Ctx) error {
	return response.Success(c, s.filter(c.Query("q"), "", ""))
}

func (s *server) byLocation(c *fiber.Ctx) error {
	return response.Success(c, s.filter("", c.Query("location"), ""))
}

func (s *server) byType(c *fiber.Ctx) error {
	return response.Success(c, s.filter("", "", c.Query("type")))
}

func (s *server) locations(c *fiber.Ctx) error {
	return response.Success(c, s.distinct(func(u model.University) string { return u.Location }))
}

func (s *server) types(c *fiber.Ctx) error {
	return response.Success(c, s.distinct(func(u model.University) string { return u.Type }))
}

func (s *server) allReviews(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return response.Success(c, s.reviews)
}

func (s *server) reviewsByUniversity(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "invalid university id")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Review{}
	for _, r := range s.reviews {
		if r.UniversityID == id {
			out = append(out, r)
		}
	}
	return response.Success(c, out)
}

func (s *server) addReview(c *fiber.Ctx) error {
	var review model.Review
	if err := c.BodyParser(&review); err != nil {
		return response.BadRequest(c, "invalid review payload")
	}
	if review.UniversityID == 0 || review.Author == "" || review.Content == "" {
		return response.BadRequest(c, "universityId, author and content are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review.ID = s.nextReviewID
	s.nextReviewID++
	if review.Date.IsZero() {
		review.Date = time.Now()
	}
	if review.Pros == nil {
		review.Pros = []string{}
	}
	if review.Cons == nil {
		review.Cons = []string{}
	}
	s.reviews = append(s.reviews, review)
	s.recomputeRating(review.UniversityID)

	return response.Created(c, review)
}

// recomputeRating mirrors what the real backend does after a write: the
// mean of all ratings for the university, rounded to one decimal place.
// Callers hold s.mu.
func (s *server) recomputeRating(universityID int) {
	total, count := 0.0, 0
	for _, r := range s.reviews {
		if r.UniversityID == universityID {
			total += r.Rating
			count++
		}
	}
	if count == 0 {
		return
	}
	for i := range s.universities {
		if s.universities[i].ID == universityID {
			s.universities[i].AverageRating = math.Round(total/float64(count)*10) / 10
			s.universities[i].ReviewCount = count
			return
		}
	}
}

func (s *server) filter(search, location, uniType string) []model.University {
	search = strings.ToLower(strings.TrimSpace(search))
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.University{}
	for _, u := range s.universities {
		if location != "" && !strings.EqualFold(u.Location, location) {
			continue
		}
		if uniType != "" && !strings.EqualFold(u.Type, uniType) {
			continue
		}
		if search != "" && !matches(u, search) {
			continue
		}
		out = append(out, u)
	}
	return out
}

func matches(u model.University, search string) bool {
	for _, field := range []string{u.Name, u.NameKorean, u.Location, u.Description} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func (s *server) distinct(field func(model.University) string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := map[string]bool{}
	out := []string{}
	for _, u := range s.universities {
		v := field(u)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
