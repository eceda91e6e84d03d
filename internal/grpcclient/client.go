// Package grpcclient implements the extractor contract over gRPC.
package grpcclient

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/faceid/internal/embedding"
	"github.com/example/faceid/internal/extractor"
	"github.com/example/faceid/internal/logging"
	pb "github.com/example/faceid/proto"
)

// DialFaceDetector returns a ready-to-use client for the external face
// detection service. maxInFlight bounds concurrent Detect calls so one
// oversized image cannot monopolize the extractor.
func DialFaceDetector(ctx context.Context, addr string, maxInFlight int64, logger *zap.Logger) (extractor.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_face_detector", "", err)
		logger.Error("failed to dial face detector", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}

	client := &grpcFaceDetector{
		client:   pb.NewFaceDetectorClient(conn),
		inFlight: semaphore.NewWeighted(maxInFlight),
		logger:   logger.Named("face_detector_client"),
	}
	return client, conn, nil
}

type grpcFaceDetector struct {
	client   pb.FaceDetectorClient
	inFlight *semaphore.Weighted
	logger   *zap.Logger
}

func (g *grpcFaceDetector) Detect(ctx context.Context, image []byte) ([]extractor.DetectedFace, error) {
	if err := g.inFlight.Acquire(ctx, 1); err != nil {
		return nil, logging.NewOperationError("grpcclient.acquire_slot", "", err)
	}
	defer g.inFlight.Release(1)

	resp, err := g.client.Detect(ctx, &pb.DetectRequest{ImageData: image})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.detect", "", err)
		g.logger.Error("face detection call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	faces := make([]extractor.DetectedFace, 0, len(resp.GetFaces()))
	for _, f := range resp.GetFaces() {
		faces = append(faces, extractor.DetectedFace{
			BBox: extractor.BoundingBox{
				X0: float64(f.GetBbox().GetX0()),
				Y0: float64(f.GetBbox().GetY0()),
				X1: float64(f.GetBbox().GetX1()),
				Y1: float64(f.GetBbox().GetY1()),
			},
			Embedding: toVector(f.GetEmbedding()),
		})
	}
	return faces, nil
}

func toVector(values []float32) embedding.Vector {
	if len(values) == 0 {
		return nil
	}
	out := make(embedding.Vector, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
