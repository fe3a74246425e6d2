package regexpinit

import "regexp"

var videoID = regexp.MustCompile(`v=([^&]+)`)

var lazy = func() *regexp.Regexp {
	return regexp.MustCompile(`PT(\d+)S`)
}()

func init() {
	_ = regexp.MustCompile(`ok`)
}

func extract(s string) string {
	re := regexp.MustCompile(`youtu\.be/(.+)`) // want `regexp.MustCompile inside a function body`
	if m := re.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	return videoID.FindString(s)
}

func check(s string) bool {
	re, err := regexp.Compile(`^[A-Za-z0-9_-]{11}$`) // want `regexp.Compile inside a function body`
	if err != nil {
		return false
	}
	match := func() bool {
		return regexp.MustCompile(`x`).MatchString(s) // want `regexp.MustCompile inside a function body`
	}
	return re.MatchString(s) && match() && lazy != nil
}

type matcher struct{}

func (matcher) compile() *regexp.Regexp {
	return regexp.MustCompilePOSIX(`a+`) // want `regexp.MustCompilePOSIX inside a function body`
}
