package shared

// Either 成功值与失败值二选一
// 用于值对象工厂和关联校验：调用方可以把失败收集进 Notification 而不是立即返回错误
type Either[T, E any] struct {
	ok   T
	err  E
	isOk bool
}

// Ok 构造成功分支
func Ok[T, E any](value T) Either[T, E] {
	return Either[T, E]{ok: value, isOk: true}
}

// Fail 构造失败分支
func Fail[T, E any](err E) Either[T, E] {
	return Either[T, E]{err: err}
}

// Safe 执行 fn，把返回的 error 收进失败分支
func Safe[T any](fn func() (T, error)) Either[T, error] {
	value, err := fn()
	if err != nil {
		return Fail[T](err)
	}
	return Ok[T, error](value)
}

func (e Either[T, E]) IsOk() bool   { return e.isOk }
func (e Either[T, E]) IsFail() bool { return !e.isOk }

// Ok 成功值；失败时为零值
func (e Either[T, E]) Ok() T {
	return e.ok
}

// Error 失败值；成功时为零值
func (e Either[T, E]) Error() E {
	return e.err
}

// AsArray 同时返回两个分支，另一侧总是零值
func (e Either[T, E]) AsArray() (T, E) {
	return e.ok, e.err
}
