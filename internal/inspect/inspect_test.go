package inspect

import (
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/floatcat/internal/category"
)

func (suite *InspectSuite) TestInspect() {
	categories, err := suite.inspector.Inspect(strings.NewReader("1.5 1 0.2 NaN Inf"))
	suite.NoError(err)

	suite.Len(categories, 5)
	suite.True(category.Equal(category.IntegerAndFractionalPart{Int: 1, Frac: 0.5}, categories[0]))
	suite.True(category.Equal(category.IntegerLike(1), categories[1]))
	suite.True(category.Equal(category.FractionLike(0.2), categories[2]))
	suite.True(category.Equal(category.Nan, categories[3]))
	suite.True(category.Equal(category.Infinity, categories[4]))

	suite.Equal(`1.5 -> integer 1 and fraction 0.5
1 -> integer 1
0.2 -> fraction 0.2
NaN -> NaN
Inf -> infinity
`, suite.out.String())
}

func (suite *InspectSuite) TestInspectNegativeInfinity() {
	categories, err := suite.inspector.Inspect(strings.NewReader("-Inf"))
	suite.NoError(err)

	suite.Len(categories, 1)
	suite.True(category.Equal(category.Infinity, categories[0]))
}

func (suite *InspectSuite) TestInspectEmpty() {
	categories, err := suite.inspector.Inspect(strings.NewReader("  \n\t "))
	suite.NoError(err)
	suite.Empty(categories)
	suite.Empty(suite.out.String())
}

func (suite *InspectSuite) TestInspectBadToken() {
	categories, err := suite.inspector.Inspect(strings.NewReader("1.5 banana 2"))
	suite.EqualError(err, `token 2: "banana" is not a number`)
	suite.Nil(categories)

	// the diagnostic goes to the error output, not the report output
	suite.Equal("token 2: \"banana\" is not a number\n", suite.errOut.String())
	suite.Equal("1.5 -> integer 1 and fraction 0.5\n", suite.out.String())
}

func (suite *InspectSuite) TestInspectErrOutputQuiet() {
	_, err := suite.inspector.Inspect(strings.NewReader("1.5 NaN Inf"))
	suite.NoError(err)
	suite.Empty(suite.errOut.String())
}

func (suite *InspectSuite) TestInspectFile() {
	suite.NoError(afero.WriteFile(suite.fs, "numbers.txt", []byte("-100 -0.002\n3.25\n"), 0644))

	categories, err := suite.inspector.InspectFile("numbers.txt")
	suite.NoError(err)

	suite.Len(categories, 3)
	suite.True(category.Equal(category.IntegerLike(-100), categories[0]))
	suite.True(category.Equal(category.FractionLike(-0.002), categories[1]))
	suite.True(category.Equal(category.IntegerAndFractionalPart{Int: 3, Frac: 0.25}, categories[2]))
}

func (suite *InspectSuite) TestInspectFileMissing() {
	_, err := suite.inspector.InspectFile("no-such-file.txt")
	suite.Error(err)
}
