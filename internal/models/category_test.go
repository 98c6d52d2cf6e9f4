package models

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type CategoryTestSuite struct {
	suite.Suite
}

func TestCategorySuite(t *testing.T) {
	suite.Run(t, new(CategoryTestSuite))
}

func (s *CategoryTestSuite) TestCategoryFromKeywords_KnownDescriptions() {
	testCases := []struct {
		text     string
		expected Category
		name     string
	}{
		{"starbucks latte", CategoryFood, "coffee chain"},
		{"migros alışverişi", CategoryFood, "grocery store"},
		{"uber ride home", CategoryTransport, "ride hailing"},
		{"metro bileti", CategoryTransport, "public transit"},
		{"elektrik faturası", CategoryUtilities, "electricity bill"},
		{"netflix aboneliği", CategoryEntertainment, "streaming subscription"},
		{"eczane ilaç", CategoryHealth, "pharmacy"},
		{"udemy go kursu", CategoryEducation, "online course"},
		{"asus laptop", CategoryShopping, "electronics"},
		{"ev kirası", CategoryHousing, "rent"},
		{"kuaför randevusu", CategoryPersonal, "hairdresser"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, CategoryFromKeywords(tc.text))
		})
	}
}

func (s *CategoryTestSuite) TestCategoryFromKeywords_CaseInsensitive() {
	s.Equal(CategoryFood, CategoryFromKeywords("STARBUCKS Latte"))
	s.Equal(CategoryShopping, CategoryFromKeywords("MacBook Pro"))
}

func (s *CategoryTestSuite) TestCategoryFromKeywords_NoMatch() {
	s.Equal(CategoryOther, CategoryFromKeywords("xyzzy"))
	s.Equal(CategoryOther, CategoryFromKeywords(""))
}

func (s *CategoryTestSuite) TestCategoryFromKeywords_DeclarationOrderWins() {
	// "telefon" appears in both UTILITIES and SHOPPING keyword lists;
	// UTILITIES is declared earlier and must win the tie.
	s.Equal(CategoryUtilities, CategoryFromKeywords("telefon"))
}

func (s *CategoryTestSuite) TestParseCategory() {
	testCases := []struct {
		token    string
		expected Category
	}{
		{"FOOD", CategoryFood},
		{"food", CategoryFood},
		{"  Transport  ", CategoryTransport},
		{"SHOPPING", CategoryShopping},
		{"GADGETS", CategoryOther},
		{"", CategoryOther},
	}

	for _, tc := range testCases {
		s.Equal(tc.expected, ParseCategory(tc.token), "token %q", tc.token)
	}
}

func (s *CategoryTestSuite) TestEmoji() {
	s.Equal("🍔", CategoryFood.Emoji())
	s.Equal("📦", CategoryOther.Emoji())
	s.Equal("❓", Category("BOGUS").Emoji())
}
