// Package model defines the core domain entities for the grimoire card service.
package model

// LiteCardCap is the maximum number of cards returned to a caller for a single page.
const LiteCardCap = 60

// ImageURIs holds the upstream image links for a card or card face.
type ImageURIs struct {
	Small  string `json:"small,omitempty"`
	Normal string `json:"normal,omitempty"`
	Large  string `json:"large,omitempty"`
	PNG    string `json:"png,omitempty"`
}

// Preferred returns the first available link in normal, small, png order.
func (u *ImageURIs) Preferred() string {
	if u == nil {
		return ""
	}
	switch {
	case u.Normal != "":
		return u.Normal
	case u.Small != "":
		return u.Small
	default:
		return u.PNG
	}
}

// CardFace is one side of a multi-faced card.
type CardFace struct {
	Name      string     `json:"name,omitempty"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
}

// Card is the upstream card summary as returned by the search API.
type Card struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	ManaCost  string     `json:"mana_cost,omitempty"`
	TypeLine  string     `json:"type_line,omitempty"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
	CardFaces []CardFace `json:"card_faces,omitempty"`
}

// ImageURL resolves the card's upstream image link, falling back to the first face.
func (c Card) ImageURL() string {
	if u := c.ImageURIs.Preferred(); u != "" {
		return u
	}
	if len(c.CardFaces) > 0 {
		return c.CardFaces[0].ImageURIs.Preferred()
	}
	return ""
}

// SearchPage is one page of upstream search results.
// NextPage is set only when HasMore is true.
type SearchPage struct {
	Data     []Card `json:"data"`
	HasMore  bool   `json:"has_more"`
	NextPage string `json:"next_page,omitempty"`
}

// LiteCard is the minimal card record exposed to callers.
//
// @Description Projected card with a stable image reference
// @Example {"id": "e3285e6b", "name": "Lightning Bolt", "image": "/api/card-image/e3285e6b", "mana_cost": "{R}", "type_line": "Instant"}
type LiteCard struct {
	ID       string `json:"id" example:"e3285e6b"`
	Name     string `json:"name" example:"Lightning Bolt"`
	Image    string `json:"image" example:"/api/card-image/e3285e6b"`
	ManaCost string `json:"mana_cost,omitempty" example:"{R}"`
	TypeLine string `json:"type_line,omitempty" example:"Instant"`
}

// SearchResult is a projected page ready to hand to a caller.
type SearchResult struct {
	Cards    []LiteCard `json:"cards"`
	HasMore  bool       `json:"has_more"`
	NextPage string     `json:"next_page,omitempty"`
}

// CardImage holds image bytes and their content type.
type CardImage struct {
	Data        []byte
	ContentType string
}

// ParsedPrompt is the parser service's answer for a natural-language prompt.
type ParsedPrompt struct {
	Query      string   `json:"query,omitempty"`
	QueryParts []string `json:"query_parts"`
	Warnings   []string `json:"warnings"`
}

// PromptResult is a search result together with the parsed prompt that produced it.
type PromptResult struct {
	SearchResult
	Query      string   `json:"query"`
	QueryParts []string `json:"query_parts"`
	Warnings   []string `json:"warnings"`
}
