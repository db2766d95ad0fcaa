package test_test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/msgfmt"
	mock_plural "github.com/loopcontext/msgfmt/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Message Formatter", func() {
	var formatter *msgfmt.Formatter

	BeforeEach(func() {
		formatter = msgfmt.NewFormatter(msgfmt.Config{})
	})

	It("should return plain text untouched", func() {
		Expect(formatter.Format("nothing here", msgfmt.Params{}, nil)).To(Equal("nothing here"))
	})

	It("should return the input when params are absent", func() {
		text := "Hello {name}"
		Expect(formatter.Format(text, nil, nil)).To(Equal(text))
	})

	It("should interpolate simple placeholders", func() {
		out := formatter.Format("Hello {name}", msgfmt.Params{"name": "World"}, nil)
		Expect(out).To(Equal("Hello World"))
	})

	It("should convert numeric parameters to decimal text", func() {
		out := formatter.Format("{count} users", msgfmt.Params{"count": 5}, nil)
		Expect(out).To(Equal("5 users"))
	})

	It("should keep unresolved placeholders as literal text", func() {
		out := formatter.Format("Hello {name}", msgfmt.Params{"other": 1}, nil)
		Expect(out).To(Equal("Hello {name}"))
	})

	It("should pick plural branches by exact match before category", func() {
		text := "{count, plural, =0 {No items} one {# item} other {# items}}"
		Expect(formatter.Format(text, msgfmt.Params{"count": 0}, nil)).To(Equal("No items"))
		Expect(formatter.Format(text, msgfmt.Params{"count": 1}, nil)).To(Equal("1 item"))
		Expect(formatter.Format(text, msgfmt.Params{"count": 7}, nil)).To(Equal("7 items"))
	})

	It("should pick select branches with other as fallback", func() {
		text := "{gender, select, male {He} female {She} other {They}}"
		Expect(formatter.Format(text, msgfmt.Params{"gender": "female"}, nil)).To(Equal("She"))
		Expect(formatter.Format(text, msgfmt.Params{"gender": "robot"}, nil)).To(Equal("They"))
	})

	It("should resolve nested constructs", func() {
		text := "{count, plural, one {# message} other " +
			"{{gender, select, female {her # messages} other {their # messages}}}}"
		out := formatter.Format(text, msgfmt.Params{"count": 3, "gender": "female"}, nil)
		Expect(out).To(Equal("her 3 messages"))
	})

	It("should honour the per-call locale", func() {
		text := "{count, plural, one {# plik} few {# pliki} many {# plików} other {# pliku}}"
		out := formatter.Format(text, msgfmt.Params{"count": 3}, &msgfmt.Options{Locale: "pl"})
		Expect(out).To(Equal("3 pliki"))
	})

	It("should leave a construct verbatim when its variable is missing", func() {
		text := "{count, plural, one {# item} other {# items}}"
		Expect(formatter.Format(text, msgfmt.Params{"other": "x"}, nil)).To(Equal(text))
	})

	It("should truncate oversized input and report it once", func() {
		small := msgfmt.NewFormatter(msgfmt.Config{MaxTextLength: 8})
		var reported []error
		opts := &msgfmt.Options{OnError: func(err error, context string) {
			reported = append(reported, err)
		}}
		out := small.Format("0123456789", msgfmt.Params{}, opts)
		Expect(out).To(Equal("01234567"))
		Expect(reported).To(HaveLen(1))
		Expect(errors.Is(reported[0], msgfmt.ErrTextTruncated)).To(BeTrue())
		Expect(small.SnapshotStats().TruncatedInputs).To(Equal(uint64(1)))
	})

	It("should degrade to plain interpolation on over-deep nesting", func() {
		text := "deep"
		for i := 0; i < msgfmt.DefaultMaxNestingDepth+2; i++ {
			text = "{count, plural, other {" + text + "}}"
		}
		var reported []error
		opts := &msgfmt.Options{OnError: func(err error, context string) {
			reported = append(reported, err)
		}}
		out := formatter.Format(text, msgfmt.Params{"count": 1}, opts)
		Expect(out).To(Equal(text))
		Expect(reported).To(HaveLen(1))
		Expect(errors.Is(reported[0], msgfmt.ErrNestingTooDeep)).To(BeTrue())
	})

	It("should amortize rule construction through a shared cache", func() {
		cache := msgfmt.NewRuleCache(4)
		opts := &msgfmt.Options{Locale: "ru", RuleCache: cache}
		text := "{count, plural, one {один} few {несколько} many {много} other {другое}}"

		Expect(formatter.Format(text, msgfmt.Params{"count": 2}, opts)).To(Equal("несколько"))
		Expect(cache.Size()).To(Equal(1))
		Expect(formatter.Format(text, msgfmt.Params{"count": 5}, opts)).To(Equal("много"))
		Expect(formatter.SnapshotStats().RuleCacheHits).To(BeNumerically(">", uint64(0)))
	})

	It("should be safe under concurrent formatting against one cache", func() {
		cache := msgfmt.NewRuleCache(4)
		locales := []string{"en", "ru", "pl", "ar", "cy", "he"}
		text := "{count, plural, one {# item} other {# items}}"

		const workers = 8
		const iterations = 100

		errCh := make(chan error, workers)
		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(worker int) {
				defer wg.Done()
				for j := 0; j < iterations; j++ {
					opts := &msgfmt.Options{Locale: locales[(worker+j)%len(locales)], RuleCache: cache}
					out := formatter.Format(text, msgfmt.Params{"count": j}, opts)
					if out == "" {
						errCh <- fmt.Errorf("worker %d got empty result", worker)
						return
					}
				}
			}(i)
		}
		wg.Wait()
		close(errCh)

		for err := range errCh {
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(cache.Size()).To(BeNumerically("<=", 4))
	})
})

var _ = Describe("Plural backend injection", func() {
	var ctrl *gomock.Controller

	BeforeEach(func() {
		ctrl = gomock.NewController(GinkgoT())
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should fall back to the default-locale rule when construction fails", func() {
		defaultRule := mock_plural.NewMockRule(ctrl)
		defaultRule.EXPECT().Category(gomock.Any()).Return("one").AnyTimes()

		backend := mock_plural.NewMockBackend(ctrl)
		backend.EXPECT().Rule("en").Return(defaultRule, nil)
		backend.EXPECT().Rule("zz-unknown").Return(nil, errors.New("no rules for locale")).AnyTimes()

		formatter := msgfmt.NewFormatter(msgfmt.Config{Backend: backend})
		text := "{count, plural, one {# item} other {# items}}"
		out := formatter.Format(text, msgfmt.Params{"count": 5}, &msgfmt.Options{Locale: "zz-unknown"})
		Expect(out).To(Equal("5 item"))
		Expect(formatter.SnapshotStats().RuleFallbacks).To(Equal(uint64(1)))
	})

	It("should construct each locale rule once when a cache is supplied", func() {
		rule := mock_plural.NewMockRule(ctrl)
		rule.EXPECT().Category(gomock.Any()).Return("other").AnyTimes()

		backend := mock_plural.NewMockBackend(ctrl)
		backend.EXPECT().Rule("en").Return(rule, nil)
		// One construction for the cache miss; every later call must hit.
		backend.EXPECT().Rule("ru").Return(rule, nil).Times(1)

		formatter := msgfmt.NewFormatter(msgfmt.Config{Backend: backend})
		cache := msgfmt.NewRuleCache(4)
		opts := &msgfmt.Options{Locale: "ru", RuleCache: cache}
		text := "{count, plural, one {# item} other {# items}}"

		for i := 0; i < 5; i++ {
			Expect(formatter.Format(text, msgfmt.Params{"count": i}, opts)).NotTo(BeEmpty())
		}
	})
})
