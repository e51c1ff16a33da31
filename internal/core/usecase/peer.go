package usecase

import "context"

type peerKey struct{}

// WithPeer guarda en el contexto la dirección del cliente remoto.
func WithPeer(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, peerKey{}, addr)
}

func PeerFromContext(ctx context.Context) string {
	addr, _ := ctx.Value(peerKey{}).(string)
	return addr
}
