// Package twitter assembles TweetDetails from three dependent lookups (user,
// latest tweet, tweet sentiment) using the Result combinators in pkg/rop.
//
// Three interchangeable strategies are provided. Applicative uses the
// applicative apply family. Curried chains applyResult adapters with FlatMap.
// Staged fills a DetailsBuilder through a chain. All three stop at the first
// failed lookup and return that failure unchanged.
package twitter
