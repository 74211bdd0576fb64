package utils

import "time"

type TimeServiceInterface interface {
	WaitMilliseconds(milliseconds int64)
	GetNow() time.Time
	GetNowUnix() int64
	GetNowDateTimeString() string
}

type TimeHelper struct {
}

func (t *TimeHelper) WaitMilliseconds(milliseconds int64) {
	time.Sleep(time.Millisecond * time.Duration(milliseconds))
}

func (t *TimeHelper) GetNow() time.Time {
	return time.Now()
}

func (t *TimeHelper) GetNowUnix() int64 {
	return time.Now().Unix()
}

func (t *TimeHelper) GetNowDateTimeString() string {
	return time.Now().Format("2006-01-02 15:04:05")
}
