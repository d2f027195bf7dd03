// unibrowse is a terminal browser over the university data layer: the
// stand-in for the app's view components. It talks only to the client
// package, never to HTTP or cache internals.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/studykorea/uniclient/client"
	"github.com/studykorea/uniclient/config"
	"github.com/studykorea/uniclient/model"
)

func main() {
	if err := config.LoadENV(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	env, err := config.Get()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}

	c := client.NewFromEnv(env)

	if env.CACHE_REFRESH_SCHEDULE != "" {
		refresher, err := client.NewRefresher(c, env.CACHE_REFRESH_SCHEDULE)
		if err != nil {
			log.Fatalf("Invalid CACHE_REFRESH_SCHEDULE: %v", err)
		}
		refresher.Start()
		defer refresher.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	args := os.Args[1:]
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	switch args[0] {
	case "list":
		pageNumber := 0
		if len(args) > 1 {
			if n, err := strconv.Atoi(args[1]); err == nil && n > 0 {
				pageNumber = n - 1
			}
		}
		page := c.ListUniversities(ctx, pageNumber, 0, "", "", "")
		printList(page.Content)
		fmt.Printf("page %d/%d, %d universities total\n", page.Page+1, max(page.TotalPages, 1), page.TotalElements)
	case "show":
		id := mustID(args)
		u, err := c.GetUniversityByID(ctx, id)
		if err != nil {
			fmt.Println(client.FriendlyMessage(err))
			os.Exit(1)
		}
		printDetail(u)
	case "reviews":
		id := mustID(args)
		for _, r := range c.GetReviewsByUniversityID(ctx, id) {
			printReview(r)
		}
	case "top":
		limit := 3
		if len(args) > 1 {
			limit, _ = strconv.Atoi(args[1])
		}
		printList(c.GetTopRatedUniversities(ctx, limit))
	case "locations":
		fmt.Println(strings.Join(c.GetLocations(ctx), "\n"))
	case "search":
		if len(args) < 2 {
			usage()
			os.Exit(1)
		}
		printList(c.SearchUniversities(ctx, strings.Join(args[1:], " ")))
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: unibrowse <command>

commands:
  list [page]        browse the catalog
  show <id>          university detail
  reviews <id>       reviews for a university
  top [n]            top rated universities
  locations          distinct locations
  search <query>     free text search`)
}

func mustID(args []string) int {
	if len(args) < 2 {
		usage()
		os.Exit(1)
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid id %q\n", args[1])
		os.Exit(1)
	}
	return id
}

func printList(list []model.University) {
	for _, u := range list {
		rating := "unrated"
		if u.AverageRating > 0 {
			rating = fmt.Sprintf("%.1f/5", u.AverageRating)
		}
		fmt.Printf("%3d  %-30s %-8s %-8s %s\n", u.ID, u.Name, u.Location, u.Type, rating)
	}
}

func printDetail(u model.University) {
	fmt.Printf("%s (%s)\n", u.Name, u.NameKorean)
	fmt.Printf("%s · %s · est. %d\n", u.Location, u.Type, u.Established)
	fmt.Println(u.Website)
	fmt.Println()
	fmt.Println(u.Description)
	if len(u.Departments) > 0 {
		fmt.Printf("\nDepartments: %s\n", strings.Join(u.Departments, ", "))
	}
	if u.AverageRating > 0 {
		fmt.Printf("Rating: %.1f/5 (%d reviews)\n", u.AverageRating, u.ReviewCount)
	}
}

func printReview(r model.Review) {
	fmt.Printf("%s · %.0f/5 · %s\n", r.Author, r.Rating, r.Date.Format("2006-01-02"))
	fmt.Println(r.Content)
	if len(r.Pros) > 0 {
		fmt.Printf("  + %s\n", strings.Join(r.Pros, "; "))
	}
	if len(r.Cons) > 0 {
		fmt.Printf("  - %s\n", strings.Join(r.Cons, "; "))
	}
	fmt.Println()
}
