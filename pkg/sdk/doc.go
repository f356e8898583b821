// Package newsrank ranks news articles by relevance to a free-text
// interest string, in process.
//
// The ranking strategy is decided once, when the Client is created:
//   - "pytorch" when a model manifest resolves on the model backend
//   - "tfidf" when the statistical backend is enabled (default)
//   - "date_sort" otherwise, newest publishedAt first
//
// # Untyped API
//
//	client, _ := newsrank.New(ctx)
//	res, _ := client.Rank(ctx, []newsrank.Article{
//	    {"title": "AI startups raise funding", "publishedAt": "2024-06-01"},
//	    {"title": "weather today"},
//	}, "AI startups")
//	fmt.Println(res.Method, res.Articles[0]["_score"])
//
// # Typed API
//
//	type Story struct {
//	    Title       string `json:"title"`
//	    Description string `json:"description"`
//	    PublishedAt string `json:"publishedAt"`
//	}
//
//	ranked, method, _ := newsrank.RankAs(ctx, client, stories, "climate policy")
package newsrank
