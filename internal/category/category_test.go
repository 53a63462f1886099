package category

func (suite *CategorySuite) TestEqual() {
	suite.True(Equal(Nan, Nan))
	suite.True(Equal(Infinity, Infinity))
	suite.True(Equal(IntegerLike(2), IntegerLike(2)))
	suite.True(Equal(FractionLike(0.25), FractionLike(0.25)))
	suite.True(Equal(
		IntegerAndFractionalPart{Int: 1, Frac: 0.5},
		IntegerAndFractionalPart{Int: 1, Frac: 0.5},
	))

	suite.False(Equal(Nan, Infinity))
	suite.False(Equal(IntegerLike(2), IntegerLike(3)))
	suite.False(Equal(IntegerLike(0), FractionLike(0)))
	suite.False(Equal(
		IntegerAndFractionalPart{Int: 1, Frac: 0.5},
		IntegerAndFractionalPart{Int: 1, Frac: 0.25},
	))
}

func (suite *CategorySuite) TestKindString() {
	suite.Equal("IntegerLike", KindIntegerLike.String())
	suite.Equal("FractionLike", KindFractionLike.String())
	suite.Equal("IntegerAndFractionalPart", KindIntegerAndFractionalPart.String())
	suite.Equal("Nan", KindNan.String())
	suite.Equal("Infinity", KindInfinity.String())
	suite.Equal("Invalid", KindInvalid.String())
}

func (suite *CategorySuite) TestString() {
	suite.Equal("integer 1", IntegerLike(1).String())
	suite.Equal("fraction 0.2", FractionLike(0.2).String())
	suite.Equal("integer 1 and fraction 0.5", IntegerAndFractionalPart{Int: 1, Frac: 0.5}.String())
	suite.Equal("NaN", Nan.String())
	suite.Equal("infinity", Infinity.String())
}
