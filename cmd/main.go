package main

import (
	"context"
	"fmt"
	"time"

	"httphead/core/head"
	"httphead/core/message"
	"httphead/server/httpd"
)

const (
	addr         = "0.0.0.0:8080"
	headTimeout  = 10 * time.Second
	maxConns     = 512
	maxBodyBytes = 1024 * 1024 /* 1mb */
)

func main() {
	server := &httpd.Server{
		Addr:         addr,
		Handler:      route,
		HeadTimeout:  headTimeout,
		MaxConns:     maxConns,
		MaxBodyBytes: maxBodyBytes,
	}

	fmt.Println("Starting on", addr)

	if err := server.ListenAndServe(context.Background()); err != nil {
		fmt.Println("error: http:", err)
	}
}

func route(request *message.Request) *message.Response {
	switch {
	case request.Method == head.GET && request.Target.Path == "/":
		return &message.Response{
			Status:  message.StatusOK,
			Headers: head.Headers{}.Add("content-type", "text/plain"),
			Body:    []byte("hi from " + request.Host.Name + "\n"),
		}
	case request.Method == head.POST && request.Target.Path == "/echo":
		return &message.Response{
			Status: message.StatusOK,
			Body:   request.Body,
		}
	case request.Method == head.POST && request.Target.Path == "/greet":
		form, err := request.Form()
		if err != nil {
			return &message.Response{Status: message.StatusBadRequest}
		}

		return &message.Response{
			Status: message.StatusOK,
			Body:   []byte("hello, " + form.Get("name") + "\n"),
		}
	case request.Target.Path == "/old":
		return message.Redirect("/")
	}

	return nil
}
