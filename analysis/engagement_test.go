package analysis

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scanbrief/models"
)

func TestTopPosts_DedupesByURLKeepingHighestRanked(t *testing.T) {
	records := []models.ScanRecord{
		{HighEngagement: []models.Post{
			{Author: "a", Likes: 300, URL: "https://x.com/1"},
		}},
		{HighEngagement: []models.Post{
			{Author: "b", Likes: 900, URL: "https://x.com/1"},
			{Author: "c", Likes: 500, URL: "https://x.com/2"},
		}},
	}

	posts := TopPosts(records, 5)

	require.Len(t, posts, 2)
	assert.Equal(t, "b", posts[0].Author, "higher-liked duplicate wins")
	assert.Equal(t, 900, posts[0].Likes)
	assert.Equal(t, "c", posts[1].Author)
}

func TestTopPosts_PromotesPopularTweets(t *testing.T) {
	records := []models.ScanRecord{
		{Tweets: []models.Tweet{
			{Username: "whale", Likes: 101, Text: "big", URL: "https://x.com/3"},
			{Username: "minnow", Likes: 100, Text: "small", URL: "https://x.com/4"},
		}},
	}

	posts := TopPosts(records, 5)

	require.Len(t, posts, 1, "likes must exceed 100")
	assert.Equal(t, "whale", posts[0].Author)
	assert.Equal(t, 101, posts[0].Likes)
}

func TestTopPosts_TweetAuthorFallback(t *testing.T) {
	records := []models.ScanRecord{
		{Tweets: []models.Tweet{{Author: "legacy", Likes: 200, URL: "https://x.com/5"}}},
	}

	posts := TopPosts(records, 5)

	require.Len(t, posts, 1)
	assert.Equal(t, "legacy", posts[0].Author)
}

func TestTopPosts_TruncatesText(t *testing.T) {
	records := []models.ScanRecord{
		{Tweets: []models.Tweet{{Username: "u", Likes: 150, Text: strings.Repeat("x", 300), URL: "https://x.com/6"}}},
	}

	posts := TopPosts(records, 5)

	require.Len(t, posts, 1)
	assert.Len(t, posts[0].Text, 200)
}

func TestTopPosts_TruncatesOnRuneBoundary(t *testing.T) {
	records := []models.ScanRecord{
		{Tweets: []models.Tweet{{Username: "u", Likes: 150, Text: strings.Repeat("émoji🚀", 50), URL: "https://x.com/7"}}},
	}

	posts := TopPosts(records, 5)

	require.Len(t, posts, 1)
	assert.True(t, utf8.ValidString(posts[0].Text), "cut must not split a rune")
	assert.Equal(t, 200, utf8.RuneCountInString(posts[0].Text))
}

func TestTopPosts_LimitAndDefault(t *testing.T) {
	var posts []models.Post
	for i := 0; i < 8; i++ {
		posts = append(posts, models.Post{Likes: 1000 - i, URL: string(rune('a' + i))})
	}
	records := []models.ScanRecord{{HighEngagement: posts}}

	assert.Len(t, TopPosts(records, 3), 3)
	assert.Len(t, TopPosts(records, 0), DefaultTopPosts)
}

func TestTopPosts_Empty(t *testing.T) {
	assert.Empty(t, TopPosts(nil, 5))
}
