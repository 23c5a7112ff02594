// SPDX-License-Identifier: Apache-2.0

// Package glcd is a retained-mode render list for displays without a
// framebuffer.
//
// Objects are small bundles of components (lines, rectangles, circles,
// images, text and buttons) whose storage is reserved in an arena.Arena.
// Insertion order is paint order. Because every pixel write is final, the
// Manager emulates erasing by repainting the background over a region and
// replaying every visible object that overlaps it, in insertion order.
//
// A Manager performs no locking. Code running on other goroutines posts
// intents to a Queue which the owner of the Manager drains.
package glcd
