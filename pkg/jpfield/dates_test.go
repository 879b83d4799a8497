package jpfield_test

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uns-visa/visakit/pkg/jpfield"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days     int
		status   jpfield.Status
		urgency  jpfield.Urgency
		canRenew bool
	}{
		{-30, jpfield.StatusExpired, jpfield.UrgencyError, false},
		{-1, jpfield.StatusExpired, jpfield.UrgencyError, false},
		{0, jpfield.StatusExpiringToday, jpfield.UrgencyError, true},
		{1, jpfield.StatusCritical, jpfield.UrgencyError, true},
		{30, jpfield.StatusCritical, jpfield.UrgencyError, true},
		{31, jpfield.StatusWarning, jpfield.UrgencyWarning, true},
		{60, jpfield.StatusWarning, jpfield.UrgencyWarning, true},
		{61, jpfield.StatusSoon, jpfield.UrgencyInfo, true},
		{90, jpfield.StatusSoon, jpfield.UrgencyInfo, true},
		{91, jpfield.StatusOK, jpfield.UrgencySuccess, false},
		{400, jpfield.StatusOK, jpfield.UrgencySuccess, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.days), func(t *testing.T) {
			t.Parallel()
			status, urgency, canRenew := jpfield.Classify(tt.days)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.urgency, urgency)
			assert.Equal(t, tt.canRenew, canRenew)
		})
	}
}

func TestVisaExpiration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		days    int
		status  jpfield.Status
		message string
	}{
		{-1, jpfield.StatusExpired, "期限切れ（1日経過）"},
		{-45, jpfield.StatusExpired, "期限切れ（45日経過）"},
		{0, jpfield.StatusExpiringToday, "本日期限切れ"},
		{30, jpfield.StatusCritical, "期限まで30日（緊急）"},
		{31, jpfield.StatusWarning, "期限まで31日（要注意）"},
		{90, jpfield.StatusSoon, "期限まで90日（更新可能）"},
		{91, jpfield.StatusOK, "期限まで91日"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.days), func(t *testing.T) {
			t.Parallel()
			date := daysFromToday(tt.days)
			res := jpfield.VisaExpiration(date, clock()...)

			require.True(t, res.Valid)
			require.NotNil(t, res.Expiration)
			assert.Equal(t, tt.days, res.DaysRemaining)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, tt.message, res.Message)
			assert.Equal(t, date, res.ExpirationDate)
			assert.Equal(t, date, res.Formatted)
		})
	}

	t.Run("today follows the configured location", func(t *testing.T) {
		t.Parallel()
		// 2025-06-14 20:30 UTC is already 2025-06-15 in Tokyo.
		res := jpfield.VisaExpiration("2025-06-15", clock()...)
		assert.Equal(t, jpfield.StatusExpiringToday, res.Status)

		res = jpfield.VisaExpiration("2025-06-15",
			jpfield.WithClock(func() time.Time { return time.Date(2025, time.June, 14, 20, 30, 0, 0, time.UTC) }),
			jpfield.WithLocation(time.UTC),
		)
		assert.Equal(t, 1, res.DaysRemaining)
	})

	t.Run("alternative layouts", func(t *testing.T) {
		t.Parallel()
		for _, v := range []string{"2025/07/15", "2025-7-15", "2025年7月15日", "2025-07-15T23:00:00+09:00", "２０２５－０７－１５"} {
			res := jpfield.VisaExpiration(v, clock()...)
			require.True(t, res.Valid, v)
			assert.Equal(t, 30, res.DaysRemaining, v)
		}
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		res := jpfield.VisaExpiration("", clock()...)
		assert.False(t, res.Valid)
		assert.Nil(t, res.Expiration)
		assert.Equal(t, "在留期限を入力してください", res.Error)
	})

	t.Run("unparseable", func(t *testing.T) {
		t.Parallel()
		res := jpfield.VisaExpiration("someday", clock()...)
		assert.False(t, res.Valid)
		assert.Nil(t, res.Expiration)
		assert.Equal(t, "validation.expiration.format", res.Code)
	})

	t.Run("english messages", func(t *testing.T) {
		t.Parallel()
		res := jpfield.VisaExpiration(daysFromToday(10), slices.Concat(clock(), []jpfield.Option{jpfield.WithLanguage("en")})...)
		assert.Equal(t, "10 days left (urgent)", res.Message)
	})
}

func TestDate(t *testing.T) {
	t.Parallel()

	t.Run("optional by default", func(t *testing.T) {
		t.Parallel()
		assert.True(t, jpfield.Date("").Valid)
	})

	t.Run("required uses label", func(t *testing.T) {
		t.Parallel()
		res := jpfield.Date("", jpfield.WithRequired(true))
		assert.Equal(t, "日付を入力してください", res.Error)

		res = jpfield.Date("", jpfield.WithRequired(true), jpfield.WithLabel("入国日"))
		assert.Equal(t, "入国日を入力してください", res.Error)
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()
		res := jpfield.Date("2024/2/29")
		assert.True(t, res.Valid)
		assert.Equal(t, "2024-02-29", res.Formatted)

		res = jpfield.Date("2023-02-29")
		assert.False(t, res.Valid)
		assert.Equal(t, "日付の形式が無効です", res.Error)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		t.Parallel()
		opts := []jpfield.Option{
			jpfield.WithMinDate(time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)),
			jpfield.WithMaxDate(time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)),
			jpfield.WithLabel("入社日"),
		}

		assert.True(t, jpfield.Date("2025-04-01", opts...).Valid)
		assert.True(t, jpfield.Date("2025-06-30", opts...).Valid)

		res := jpfield.Date("2025-03-31", opts...)
		assert.False(t, res.Valid)
		assert.Equal(t, "入社日は2025-04-01以降である必要があります", res.Error)

		res = jpfield.Date("2025-07-01", opts...)
		assert.False(t, res.Valid)
		assert.Equal(t, "入社日は2025-06-30以前である必要があります", res.Error)
	})
}

func TestBirthDate(t *testing.T) {
	t.Parallel()

	t.Run("age is the year difference the day before the birthday", func(t *testing.T) {
		t.Parallel()
		// today is 2025-06-15, birthday on 06-16 has not happened yet
		res := jpfield.BirthDate("1990-06-16", clock()...)
		require.True(t, res.Valid)
		assert.Equal(t, 34, res.Age)

		res = jpfield.BirthDate("1990-06-14", clock()...)
		require.True(t, res.Valid)
		assert.Equal(t, 35, res.Age)
		assert.Equal(t, "1990-06-14", res.Formatted)
	})

	t.Run("exactly eighteen", func(t *testing.T) {
		t.Parallel()
		res := jpfield.BirthDate("2007-06-15", clock()...)
		require.True(t, res.Valid)
		assert.Equal(t, 18, res.Age)
	})

	t.Run("under eighteen", func(t *testing.T) {
		t.Parallel()
		res := jpfield.BirthDate("2007-06-16", clock()...)
		assert.False(t, res.Valid)
		assert.Equal(t, "申請者は18歳以上である必要があります", res.Error)
		assert.Zero(t, res.Age)
	})

	t.Run("required", func(t *testing.T) {
		t.Parallel()
		res := jpfield.BirthDate("", clock()...)
		assert.Equal(t, "生年月日を入力してください", res.Error)

		res = jpfield.BirthDate("", jpfield.WithLanguage("en"))
		assert.Equal(t, "Please enter Date of birth", res.Error)
	})

	t.Run("invalid", func(t *testing.T) {
		t.Parallel()
		res := jpfield.BirthDate("1990-13-01", clock()...)
		assert.Equal(t, "生年月日の形式が無効です", res.Error)
	})
}

func TestAge(t *testing.T) {
	t.Parallel()

	leap := time.Date(2004, time.February, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 20, jpfield.Age(leap, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 21, jpfield.Age(leap, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, jpfield.Age(today, today))
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	d, err := jpfield.ParseDate(" 2025/06/15 ")
	require.NoError(t, err)
	assert.Equal(t, today, d)

	_, err = jpfield.ParseDate("15/06/2025")
	require.ErrorIs(t, err, jpfield.ErrInvalidDate)

	assert.Equal(t, "2025-06-15", jpfield.FormatDate("2025年6月15日"))
	assert.Equal(t, "junk", jpfield.FormatDate("junk"))
}
