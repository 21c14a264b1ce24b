package analysis

import (
	"sort"
	"unicode/utf8"

	"scanbrief/models"
)

const (
	// DefaultTopPosts is the post count returned in a brief.
	DefaultTopPosts = 5

	tweetLikesFloor = 100
	maxPostText     = 200
)

// TopPosts merges each record's pre-extracted high-engagement posts with raw
// tweets above the likes floor, ranks them by likes and deduplicates by URL.
// The first occurrence after ranking wins, so a URL keeps its highest-liked
// variant.
func TopPosts(records []models.ScanRecord, limit int) []models.Post {
	if limit <= 0 {
		limit = DefaultTopPosts
	}
	var merged []models.Post
	for _, rec := range records {
		merged = append(merged, rec.HighEngagement...)
		for _, tw := range rec.Tweets {
			if tw.Likes > tweetLikesFloor {
				merged = append(merged, postFromTweet(tw))
			}
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Likes > merged[j].Likes
	})

	seen := make(map[string]bool, len(merged))
	out := make([]models.Post, 0, limit)
	for _, post := range merged {
		if seen[post.URL] {
			continue
		}
		seen[post.URL] = true
		out = append(out, post)
		if len(out) == limit {
			break
		}
	}
	return out
}

func postFromTweet(tw models.Tweet) models.Post {
	author := tw.Username
	if author == "" {
		author = tw.Author
	}
	return models.Post{
		Author: author,
		Likes:  int(tw.Likes),
		Text:   truncate(tw.Text, maxPostText),
		URL:    tw.URL,
	}
}

// truncate cuts to n characters on a rune boundary; tweet text is routinely
// non-ASCII.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
