// Package sorter содержит устойчивую сортировку вставками по ключу,
// общую для всех отчётов магазина.
package sorter

import "cmp"

// ByKey возвращает новый срез, упорядоченный по возрастанию key(item).
// Исходный срез не изменяется.
//
// Каждый элемент добавляется в конец результата и сдвигается к началу,
// пока его ключ строго меньше ключа предшественника. Равные ключи не
// меняются местами, поэтому сортировка устойчива.
func ByKey[T, K any](items []T, key func(T) K, less func(a, b K) bool) []T {
	result := make([]T, 0, len(items))

	for _, item := range items {
		result = append(result, item)
		if len(result) < 2 {
			continue
		}

		for pos := len(result) - 1; pos > 0; pos-- {
			prev := pos - 1
			if !less(key(result[pos]), key(result[prev])) {
				break
			}
			result[pos], result[prev] = result[prev], result[pos]
		}
	}

	return result
}

// Ascending вызывает ByKey с естественным порядком ключей.
func Ascending[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	return ByKey(items, key, cmp.Less[K])
}

// Reverse возвращает новый срез с элементами в обратном порядке.
func Reverse[T any](items []T) []T {
	result := make([]T, len(items))
	for i, item := range items {
		result[len(items)-1-i] = item
	}

	return result
}
