package render

import "github.com/example/themeshot/internal/theme"

type style int

const (
	regular style = iota
	bold
	italic
)

// plain marks text drawn in the default foreground.
const plain theme.Role = ""

type token struct {
	role  theme.Role
	style style
	text  string
}

type row struct {
	indent int
	tokens []token
}

func tk(role theme.Role, text string) token { return token{role: role, text: text} }

func lit(text string) token { return token{role: plain, text: text} }

// listing is the Java snippet shown in the editor, one entry per line.
var listing = []row{
	{0, []token{tk(theme.RoleKeyword, "package "), lit("com.example.app;")}},
	{},
	{0, []token{tk(theme.RoleKeyword, "import "), tk(theme.RoleClass, "java.util.List"), lit(";")}},
	{0, []token{tk(theme.RoleKeyword, "import "), tk(theme.RoleClass, "java.util.stream.Collectors"), lit(";")}},
	{},
	{0, []token{{role: theme.RoleComment, style: italic, text: "/** Main application class */"}}},
	{0, []token{tk(theme.RoleAnnotation, "@SuppressWarnings"), lit("("), tk(theme.RoleString, `"unchecked"`), lit(")")}},
	{0, []token{tk(theme.RoleKeyword, "public class "), {role: theme.RoleClass, style: bold, text: "App"}, lit(" {")}},
	{20, []token{
		tk(theme.RoleKeyword, "private static final "), tk(theme.RoleClass, "String "),
		{role: theme.RoleConstant, style: bold, text: "VERSION"}, lit(" = "), tk(theme.RoleString, `"1.0.0"`), lit(";"),
	}},
	{20, []token{
		tk(theme.RoleKeyword, "private "), tk(theme.RoleClass, "List"), lit("<"), tk(theme.RoleClass, "String"),
		lit("> "), tk(theme.RoleField, "items"), lit(";"),
	}},
	{},
	{20, []token{
		tk(theme.RoleKeyword, "public "), tk(theme.RoleType, "int "), tk(theme.RoleFunction, "getCount"), lit("("),
		tk(theme.RoleClass, "String "), tk(theme.RoleParameter, "filter"), lit(") {"),
	}},
	{40, []token{
		tk(theme.RoleKeyword, "return "), tk(theme.RoleField, "items"), lit("."), tk(theme.RoleFunction, "stream"), lit("()"),
	}},
	{60, []token{
		lit("."), tk(theme.RoleFunction, "filter"), lit("("), tk(theme.RoleVariable, "s"), lit(" -> "),
		tk(theme.RoleVariable, "s"), lit("."), tk(theme.RoleFunction, "contains"), lit("("),
		tk(theme.RoleParameter, "filter"), lit("))"),
	}},
	{60, []token{lit("."), tk(theme.RoleFunction, "toList"), lit("()."), tk(theme.RoleFunction, "size"), lit("();")}},
	{20, []token{lit("}")}},
	{0, []token{lit("}")}},
}

var treeItems = []string{
	"src", "  main", "    java", "      App.java", "    resources",
	"      themes/", "  test", "    AppTest.java", "build.gradle", "README.md",
}
