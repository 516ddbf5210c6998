package model

import "errors"

var ErrPackNotFound = errors.New("pack not found")
